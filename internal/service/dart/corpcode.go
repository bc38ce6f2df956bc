package dart

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const corpCodeEntry = "CORPCODE.xml"

type corpCodeList struct {
	Items []struct {
		CorpCode  string `xml:"corp_code"`
		CorpName  string `xml:"corp_name"`
		StockCode string `xml:"stock_code"`
	} `xml:"list"`
}

// ParseCorpCodes reads the CORPCODE.xml entry of the DART archive and maps
// listing codes to corp codes. Unlisted companies (blank stock code) are
// left out.
func ParseCorpCodes(archive []byte) (map[string]string, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open corp code archive: %w", err)
	}

	for _, f := range zr.File {
		if !strings.EqualFold(f.Name, corpCodeEntry) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		defer rc.Close()
		return decodeCorpCodes(rc)
	}
	return nil, fmt.Errorf("corp code archive has no %s", corpCodeEntry)
}

func decodeCorpCodes(r io.Reader) (map[string]string, error) {
	var doc corpCodeList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode corp codes: %w", err)
	}

	out := make(map[string]string, len(doc.Items))
	for _, it := range doc.Items {
		stock := strings.TrimSpace(it.StockCode)
		corp := strings.TrimSpace(it.CorpCode)
		if stock == "" || corp == "" {
			continue
		}
		out[stock] = corp
	}
	return out, nil
}
