package readfiles

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gointerp/utils"
)

/*
ReadGrid reads one CSV matrix per layer, each record holding one grid row,
and stacks them. All layers must have the same dimensions.
*/
func ReadGrid(files ...string) (Z utils.Array3D, err error) {
	if len(files) == 0 {
		err = fmt.Errorf("no grid layer files given")
		return
	}
	var (
		layers     = make([]mat.Matrix, len(files))
		rows, cols int
	)
	for k, file := range files {
		var M *mat.Dense
		if M, err = readLayerFile(file); err != nil {
			return
		}
		nr, nc := M.Dims()
		if k == 0 {
			rows, cols = nr, nc
		} else if nr != rows || nc != cols {
			err = fmt.Errorf("%s: layer is %d x %d, first layer is %d x %d", file, nr, nc, rows, cols)
			return
		}
		layers[k] = M
	}
	Z = utils.NewArray3DFromMatrices(layers...)
	return
}

func readLayerFile(file string) (M *mat.Dense, err error) {
	var f *os.File
	if f, err = os.Open(file); err != nil {
		return
	}
	defer f.Close()
	if M, err = ParseLayer(f); err != nil {
		err = fmt.Errorf("%s: %w", file, err)
	}
	return
}

// ParseLayer reads a CSV matrix, one record per row
func ParseLayer(r io.Reader) (M *mat.Dense, err error) {
	var (
		records    [][]string
		rowMajor   []float64
		rows, cols int
	)
	if records, err = newReader(r).ReadAll(); err != nil {
		return
	}
	if len(records) == 0 {
		err = fmt.Errorf("empty grid layer")
		return
	}
	rows, cols = len(records), len(records[0])
	rowMajor = make([]float64, 0, rows*cols)
	for i, rec := range records {
		if len(rec) != cols {
			err = fmt.Errorf("record %d has %d values, expected %d", i+1, len(rec), cols)
			return
		}
		for j, field := range rec {
			var val float64
			if val, err = parseFloat(field); err != nil {
				err = fmt.Errorf("record %d, column %d: %w", i+1, j+1, err)
				return
			}
			rowMajor = append(rowMajor, val)
		}
	}
	M = mat.NewDense(rows, cols, rowMajor)
	return
}

func ReadQueries(file string) (S, T []float64, err error) {
	var f *os.File
	if f, err = os.Open(file); err != nil {
		return
	}
	defer f.Close()
	if S, T, err = ParseQueries(f); err != nil {
		err = fmt.Errorf("%s: %w", file, err)
	}
	return
}

/*
ParseQueries reads query points as CSV records of two columns, the column
coordinate s followed by the row coordinate t. A first record where neither
field parses as a number is taken as a header.
*/
func ParseQueries(r io.Reader) (S, T []float64, err error) {
	var records [][]string
	if records, err = newReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if len(rec) != 2 {
			err = fmt.Errorf("record %d has %d values, expected 2", i+1, len(rec))
			return
		}
		s, errS := parseFloat(rec[0])
		t, errT := parseFloat(rec[1])
		if i == 0 && errS != nil && errT != nil {
			continue
		}
		if errS != nil || errT != nil {
			err = fmt.Errorf("record %d: unable to parse query point %v", i+1, rec)
			return
		}
		S = append(S, s)
		T = append(T, t)
	}
	return
}

func newReader(r io.Reader) (cr *csv.Reader) {
	cr = csv.NewReader(bufio.NewReader(r))
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	return
}

func parseFloat(field string) (val float64, err error) {
	field = strings.TrimSpace(field)
	if strings.EqualFold(field, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(field, 64)
}
