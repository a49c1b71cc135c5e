package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadCSV parses CSV text into header-keyed maps. Legacy point-of-sale
// exports frequently arrive as windows-1252 (trademark signs and accented
// titles), so the charset is sniffed from the head of the stream and
// decoded to UTF-8 before parsing. A leading UTF-8 BOM is dropped so it
// cannot contaminate the first header cell.
func ReadCSV(r io.Reader) ([]map[string]string, error) {
	br := bufio.NewReader(r)

	peek, _ := br.Peek(2048)
	if bytes.HasPrefix(peek, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
		peek = peek[len(utf8BOM):]
	}

	var src io.Reader = br
	switch detectCharset(peek) {
	case "windows-1252", "iso-8859-1":
		src = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return tableToMaps(rows)
}

func detectCharset(peek []byte) string {
	if len(peek) == 0 {
		return "utf-8"
	}
	det, err := chardet.NewTextDetector().DetectBest(peek)
	if err != nil || det == nil {
		return "utf-8"
	}
	return strings.ToLower(det.Charset)
}
