// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package mdd

import (
	"log"
	"os"
)

const _DEBUG bool = true

func init() {
	log.SetOutput(os.Stdout)
}

// logTable prints the unique table of level l, one node per line.
func (l *Level) logTable() {
	for k, n := range l.nodes {
		id := Node(k)
		log.Printf("%-3d [%d] %v # next: %-3d | count: %s\n", k, l.index, l.childrenOrNil(id), n.next, n.count)
	}
}
