package readfiles

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/notargets/gointerp/utils"
)

// WriteCSV writes one record per query: s, t, then the value of every layer
func WriteCSV(w io.Writer, S, T []float64, F utils.Array3D) (err error) {
	var (
		_, _, layers = F.Dims()
		bw           = bufio.NewWriter(w)
		cw           = csv.NewWriter(bw)
		header       = []string{"s", "t"}
		rec          = make([]string, 2+layers)
	)
	if F.LayerStride() != len(S) || len(S) != len(T) {
		return fmt.Errorf("results hold %d values per layer for %d, %d query coordinates",
			F.LayerStride(), len(S), len(T))
	}
	for i := 0; i < layers; i++ {
		header = append(header, "f"+strconv.Itoa(i))
	}
	if err = cw.Write(header); err != nil {
		return
	}
	for n := range S {
		rec[0] = formatFloat(S[n])
		rec[1] = formatFloat(T[n])
		for i := 0; i < layers; i++ {
			rec[2+i] = formatFloat(F.Layer(i)[n])
		}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return
	}
	return bw.Flush()
}

func formatFloat(val float64) string {
	if math.IsNaN(val) {
		return "NaN"
	}
	return strconv.FormatFloat(val, 'g', -1, 64)
}

type Results struct {
	Title   string        `json:"title"`
	Layers  int           `json:"layers"`
	Queries [][2]*float64 `json:"queries"` // null when not finite
	Values  [][]*float64  `json:"values"`  // One slice per layer, null when not finite
}

func NewResults(title string, S, T []float64, F utils.Array3D) (res *Results) {
	var (
		_, _, layers = F.Dims()
	)
	res = &Results{
		Title:   title,
		Layers:  layers,
		Queries: make([][2]*float64, len(S)),
		Values:  make([][]*float64, layers),
	}
	for n := range S {
		res.Queries[n] = [2]*float64{finite(S[n]), finite(T[n])}
	}
	for i := 0; i < layers; i++ {
		f := F.Layer(i)
		res.Values[i] = make([]*float64, len(f))
		for n := range f {
			res.Values[i][n] = finite(f[n])
		}
	}
	return
}

func finite(val float64) *float64 {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil
	}
	return &val
}

func WriteJSON(w io.Writer, title string, S, T []float64, F utils.Array3D) (err error) {
	if F.LayerStride() != len(S) || len(S) != len(T) {
		return fmt.Errorf("results hold %d values per layer for %d, %d query coordinates",
			F.LayerStride(), len(S), len(T))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(NewResults(title, S, T, F))
}
