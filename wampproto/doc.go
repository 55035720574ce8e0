// Package wampproto implements the core message formats, authentication
// methods, and session bookkeeping of WAMP v2 (Web Application Messaging
// Protocol) as a sans-I/O library: it transforms bytes to messages and
// messages to bytes, and tracks protocol state, but it never touches a
// socket. Callers own the transport and feed bytes in both directions.
package wampproto
