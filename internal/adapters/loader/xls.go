package loader

import (
	"errors"
	"fmt"
	"os"

	"github.com/anrid/xls"
)

// readXLS returns the cell text of the selected sheet of a legacy BIFF
// workbook.
func readXLS(path string, s settings) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	wb, err := xls.OpenReader(f, "utf-8")
	if err != nil {
		return nil, err
	}
	if wb == nil {
		return nil, errors.New("workbook stream not found")
	}

	var sheet *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		if s.sheet == "" || ws.Name == s.sheet {
			sheet = ws
			break
		}
	}
	if sheet == nil {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, s.sheet)
	}

	table := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		cols := make([]string, 0, row.LastCol()+1)
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		table = append(table, cols)
	}
	return table, nil
}
