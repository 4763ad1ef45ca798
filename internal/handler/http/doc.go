// Package http implements the REST transport of the sandbox backend.
//
// It wires chi routes onto [sandbox.Sandbox] under the /api/ prefix and
// provides the middleware in front of them: trace ids, access logging,
// gzip and bearer authentication. Responses use the wire shapes of package
// models; failures are rendered as {"detail": "..."} or as field level
// validation payloads.
package http
