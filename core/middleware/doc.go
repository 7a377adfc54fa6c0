// Package middleware holds the fiber middleware mounted by the start command.
//
//   - rayid: reuses a valid X-Ray-ID request header or assigns a new uuid, and
//     echoes it on the response.
//   - auth: requires X-API-Key when server.api_key is set; path prefixes such
//     as /swagger can be exempted.
package middleware
