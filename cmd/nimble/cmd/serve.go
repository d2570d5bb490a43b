/*
File    : nimble/cmd/nimble/cmd/serve.go
*/
package cmd

import (
	"fmt"
	"net"
	"os"

	"github.com/spf13/cobra"

	"github.com/nimblelang/nimble/repl"
)

var serveCmd = &cobra.Command{
	Use:   "serve <port>",
	Short: "Host a REPL session over TCP, one goroutine per connection",
	Args:  cobra.ExactArgs(1),
	RunE:  runServe,
}

// runServe listens on args[0] and hands each accepted connection its
// own fresh Repl (and therefore its own Interpreter), grounded on the
// teacher's main.go startServer/handleClient pair.
func runServe(_ *cobra.Command, args []string) error {
	port := args[0]
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fail(exitUsage, "nimble: could not listen on :%s: %v", port, err)
	}
	defer ln.Close()
	cyanColor.Fprintf(os.Stdout, "nimble REPL server listening on :%s\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "nimble: accept error: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	fmt.Fprintf(os.Stdout, "client connected: %s\n", conn.RemoteAddr())
	repl.New().Start(conn, conn)
	fmt.Fprintf(os.Stdout, "client disconnected: %s\n", conn.RemoteAddr())
}
