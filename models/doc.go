/*
Package models holds the value types shared between the accessor interface
and its implementations: opaque composable filters, scan pages with
continuation tokens, and functional options for streaming scans.
*/
package models
