// Command memgate is a stateless MCP stdio adapter in front of a remote
// memory service. It speaks newline-delimited JSON-RPC 2.0 on stdin/stdout
// and forwards tool, resource and prompt invocations to the service's HTTP
// JSON-RPC endpoint.
package main

import (
	"log"
	"os"

	"github.com/memgate/memgate"
)

func main() {
	if err := memgate.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
