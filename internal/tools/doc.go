// Package tools holds the tools the server exposes and the helpers they share.
package tools
