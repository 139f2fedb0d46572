// Package resolver turns hostnames into IPv4 addresses for route lookups.
//
// Queries are plain UDP A lookups against one configured upstream using
// github.com/miekg/dns. Answers are cached until the smallest TTL of the
// response expires.
package resolver
