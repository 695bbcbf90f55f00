// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/go-ordseq/ordseq/common"
	"github.com/go-ordseq/ordseq/ordmap"
)

var scriptFlag = cli.StringFlag{
	Name:     "script",
	Usage:    "path to a line-oriented script of ordmap operations",
	Required: true,
}

var runCommand = cli.Command{
	Action: run,
	Name:   "run",
	Usage:  "replays a script of insert/remove/lookup/index/walk/footprint operations against an in-memory map",
	Flags: []cli.Flag{
		&scriptFlag,
	},
}

// run replays a line-oriented script against an ordmap.Map[int, string].
// Supported commands, one per line:
//
//	insert <key> <value>
//	remove <key>
//	lookup <key>
//	index <rank>
//	walk
//	footprint
//
// Blank lines and lines starting with '#' are ignored.
func run(ctx *cli.Context) error {
	path := ctx.String(scriptFlag.Name)
	log.Printf("Opening script %v ...", path)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	m := ordmap.New[int, string](common.IntComparator{})

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := execute(m, text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return scanner.Err()
}

func execute(m *ordmap.Map[int, string], line string) error {
	fields := strings.Fields(line)
	switch fields[0] {
	case "insert":
		if len(fields) != 3 {
			return fmt.Errorf("insert requires <key> <value>")
		}
		key, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		m.Insert(key, fields[2])
		fmt.Printf("inserted %d=%s (len=%d)\n", key, fields[2], m.Len())

	case "remove":
		if len(fields) != 2 {
			return fmt.Errorf("remove requires <key>")
		}
		key, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		if v, ok := m.Remove(key); ok {
			fmt.Printf("removed %d=%s (len=%d)\n", key, v, m.Len())
		} else {
			fmt.Printf("remove %d: not found\n", key)
		}

	case "lookup":
		if len(fields) != 2 {
			return fmt.Errorf("lookup requires <key>")
		}
		key, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		if v, ok := m.Lookup(key); ok {
			fmt.Printf("lookup %d = %s\n", key, v)
		} else {
			fmt.Printf("lookup %d: absent\n", key)
		}

	case "index":
		if len(fields) != 2 {
			return fmt.Errorf("index requires <rank>")
		}
		rank, err := strconv.Atoi(fields[1])
		if err != nil {
			return err
		}
		if k, v, ok := m.Index(rank); ok {
			fmt.Printf("index %d = %d=%s\n", rank, k, v)
		} else {
			fmt.Printf("index %d: absent\n", rank)
		}

	case "walk":
		cur, ok := m.Cursor()
		if !ok {
			fmt.Println("walk: map is empty")
			return nil
		}
		for i := 0; i < m.Len(); i++ {
			if i > 0 {
				cur.Advance(1)
			}
			k, v := cur.Focus()
			fmt.Printf("  %d=%s\n", k, v)
		}

	case "footprint":
		fmt.Println(m.Footprint())

	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
	return nil
}
