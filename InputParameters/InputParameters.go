package InputParameters

import (
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
)

type MethodType uint8

const (
	Kernel MethodType = iota
	Operator
)

var MethodNameMap = map[string]MethodType{
	"kernel":   Kernel,
	"direct":   Kernel,
	"operator": Operator,
	"sparse":   Operator,
}

func NewMethodType(label string) (mt MethodType, err error) {
	var ok bool
	if len(label) == 0 {
		return Kernel, nil
	}
	if mt, ok = MethodNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown interpolation method: %q, must be one of Kernel, Operator", label)
	}
	return
}

func (mt MethodType) String() string {
	switch mt {
	case Operator:
		return "Operator"
	default:
		return "Kernel"
	}
}

// Parameters obtained from the YAML input file
type InputParameters struct {
	Title          string   `json:"Title"`
	Grid           []string `json:"Grid"`    // One CSV file per layer
	Queries        string   `json:"Queries"` // CSV file with columns s, t
	Output         string   `json:"Output"`  // CSV, or JSON when named *.json
	Method         string   `json:"Method"`
	ParallelDegree int      `json:"ParallelDegree"`
}

func (ip *InputParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Validate() (err error) {
	switch {
	case len(ip.Grid) == 0:
		err = fmt.Errorf("input parameters must list at least one Grid layer file")
	case len(ip.Queries) == 0:
		err = fmt.Errorf("input parameters must name a Queries file")
	case ip.ParallelDegree < 0:
		err = fmt.Errorf("ParallelDegree must not be negative, have %d", ip.ParallelDegree)
	default:
		_, err = NewMethodType(ip.Method)
	}
	return
}

func (ip *InputParameters) Print(w io.Writer) {
	mt, _ := NewMethodType(ip.Method)
	fmt.Fprintf(w, "\"%s\"\t\t= Title\n", ip.Title)
	for i, file := range ip.Grid {
		fmt.Fprintf(w, "[%s]\t\t= Grid Layer %d\n", file, i)
	}
	fmt.Fprintf(w, "[%s]\t\t= Queries\n", ip.Queries)
	fmt.Fprintf(w, "[%s]\t\t= Output\n", ip.Output)
	fmt.Fprintf(w, "[%s]\t\t= Method\n", mt)
	fmt.Fprintf(w, "[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
}
