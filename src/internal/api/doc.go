// Package api provides the read-only REST API of keen-lpm.
//
// The server answers longest-prefix-match queries against the table built at
// startup. The table is never modified while serving, so handlers need no
// locking.
//
// # Endpoints
//
//   - GET  /api/v1/lookup/{address}  most specific route for an address or hostname
//   - GET  /api/v1/routes            the whole table in prefix order
//   - GET  /api/v1/parse?input=      classify an address or CIDR block
//   - POST /api/v1/match             pairwise match of one address against prefixes
//   - GET  /api/v1/health            table size and load time
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "no_route",
//	    "message": "no route to 8.8.8.8",
//	    "details": { "address": "8.8.8.8" }
//	  }
//	}
package api
