package loader

import (
	"fmt"
	"os"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
)

// readXLSX returns the cell text of the selected sheet of an OOXML workbook.
func readXLSX(path string, s settings) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	wb, err := xlsx.OpenReader(f)
	if err != nil {
		return nil, err
	}

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrSheetNotFound)
	}
	sheet := sheets[0]
	if s.sheet != "" {
		if wb.GetSheetIndex(s.sheet) < 0 {
			return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, s.sheet)
		}
		sheet = s.sheet
	}

	return wb.GetRows(sheet)
}
