package skipstore

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Dump writes one table row per active level, top level first, listing the
// number of nodes on that level and their keys in chain order.
func (l *SkipList[K, V]) Dump(w io.Writer) error {
	l.mu.RLock()
	rows := make([][]string, 0, l.level+1)
	for i := l.level; i >= 0; i-- {
		keys := l.keysAt(i)
		text := make([]string, len(keys))
		for j, k := range keys {
			text[j] = fmt.Sprint(k)
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.Itoa(len(keys)),
			strings.Join(text, " "),
		})
	}
	size := l.length
	l.mu.RUnlock()

	// tablewriter swallows write errors, so render into memory first.
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Level", "Nodes", "Keys"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	fmt.Fprintf(&buf, "size: %d\n", size)

	_, err := w.Write(buf.Bytes())
	return err
}
