package cli

import (
	"github.com/iudanet/docsync/internal/client/iocli"
	"github.com/iudanet/docsync/internal/client/sync"
)

// Cli связывает команды с движком синхронизации и терминалом
type Cli struct {
	svc *sync.Service
	io  iocli.IO
}

// New creates a new CLI command handler
func New(svc *sync.Service, io iocli.IO) *Cli {
	return &Cli{
		svc: svc,
		io:  io,
	}
}

// PrintUsage prints the command reference
func (c *Cli) PrintUsage() {
	c.io.Println(`docsync - offline-first document synchronization client

Usage:
  docsync [flags] <command> [arguments]

Commands:
  status                               show sync engine status
  sync                                 drain the offline operation queue
  conflicts                            list conflicts awaiting manual resolution
  resolve <id> <strategy> [content]    resolve a pending conflict
  cat <doc-id>                         print document content
  insert <doc-id> <offset> <text>      insert text into a document
  remove <doc-id> <offset> <length>    remove a text range from a document
  cache-get <doc-id>                   print the cached document snapshot
  cache-rm <doc-id>                    remove a document from the offline cache
  cache-clear                          clear the offline document cache
  watch                                monitor connectivity and sync automatically

Flags:
  -config string   path to YAML config file
  -server string   server URL
  -db string       path to local database
  -version         show version information`)
}
