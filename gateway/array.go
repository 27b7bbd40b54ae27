package gateway

import "fmt"

type ClassID uint8

const (
	DoubleClass ClassID = iota
	SingleClass
	Int8Class
	Int16Class
	Int32Class
	Int64Class
	LogicalClass
	CharClass
)

var classNames = map[ClassID]string{
	DoubleClass:  "double",
	SingleClass:  "single",
	Int8Class:    "int8",
	Int16Class:   "int16",
	Int32Class:   "int32",
	Int64Class:   "int64",
	LogicalClass: "logical",
	CharClass:    "char",
}

func (c ClassID) Name() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

/*
Array is a numeric array as seen by the host environment: a class, a
dimension list of at least two entries and column major real storage.
Storage of non double classes is carried as float64 values.
*/
type Array struct {
	Class ClassID
	Dims  []int
	Real  []float64
}

// NewDouble wraps data, or allocates zeroed storage, in a double array
func NewDouble(dims []int, dataO ...[]float64) (a *Array) {
	a = &Array{
		Class: DoubleClass,
		Dims:  normalizeDims(dims),
	}
	if len(dataO) != 0 {
		a.Real = dataO[0]
	} else {
		a.Real = make([]float64, a.NumberOfElements())
	}
	return
}

func normalizeDims(dims []int) (nd []int) {
	nd = append([]int{}, dims...)
	for len(nd) < 2 {
		nd = append(nd, 1)
	}
	return
}

func (a *Array) IsDouble() bool { return a.Class == DoubleClass }

func (a *Array) NumberOfDimensions() int { return len(a.Dims) }

func (a *Array) NumberOfElements() (n int) {
	n = 1
	for _, d := range a.Dims {
		n *= d
	}
	return
}

// M is the number of rows
func (a *Array) M() int { return a.Dims[0] }

// N is the product of all dimensions past the first
func (a *Array) N() (n int) {
	n = 1
	for _, d := range a.Dims[1:] {
		n *= d
	}
	return
}
