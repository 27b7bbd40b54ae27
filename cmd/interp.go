/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gointerp/InputParameters"
	"github.com/notargets/gointerp/interp2d"
	"github.com/notargets/gointerp/readfiles"
	"github.com/notargets/gointerp/utils"
)

type ModelInterp struct {
	ICFile         string
	OutputFile     string
	Profile        string
	ParallelDegree int
}

// InterpCmd represents the interp command
var InterpCmd = &cobra.Command{
	Use:   "interp",
	Short: "Interpolate grid layers at a set of query points",
	Long: `
Reads the grid layers and query points named in a YAML input file, interpolates
every layer at every point and writes the results as CSV or JSON.

gointerp interp -I params.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Fprintln(os.Stderr, "interp called")
		mi := &ModelInterp{}
		if mi.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		mi.OutputFile, _ = cmd.Flags().GetString("output")
		mi.Profile, _ = cmd.Flags().GetString("profile")
		mi.ParallelDegree = viper.GetInt("parallel")
		ip := processInput(mi)
		if mi.Profile != "" {
			defer startProfile(mi.Profile).Stop()
		}
		if err = RunInterp(mi, ip, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(InterpCmd)
	InterpCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Grid (layer files)\n\t- Queries (point file)")
	InterpCmd.Flags().StringP("output", "o", "", "output file, overrides Output in the input file, .json selects JSON")
	InterpCmd.Flags().StringP("profile", "p", "", "write a cpu or mem profile to the current directory")
}

func processInput(mi *ModelInterp) (ip *InputParameters.InputParameters) {
	var (
		err  error
		data []byte
	)
	if len(mi.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile)")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Grid: [ "image.csv", "gradx.csv" ] # one file per layer
Queries: "points.csv"               # columns s, t
Output: "out.csv"
Method: Kernel                      # or Operator
ParallelDegree: 4
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(mi.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParameters{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	// Relative file names are relative to the input file
	dir := filepath.Dir(mi.ICFile)
	for i, file := range ip.Grid {
		ip.Grid[i] = relativeTo(dir, file)
	}
	ip.Queries = relativeTo(dir, ip.Queries)
	ip.Output = relativeTo(dir, ip.Output)
	return
}

func relativeTo(dir, file string) string {
	if len(file) == 0 || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}

func startProfile(kind string) interface{ Stop() } {
	switch strings.ToLower(kind) {
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	default:
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	}
}

/*
RunInterp interpolates the grid named in ip at its query points and writes
the results to the output file, or to stdout when no output is named.
Progress lines go to stderr so stdout carries only the results.
*/
func RunInterp(mi *ModelInterp, ip *InputParameters.InputParameters, stdout io.Writer) (err error) {
	var (
		Z          utils.Array3D
		S, T       []float64
		method     InputParameters.MethodType
		outputFile = ip.Output
		np         = mi.ParallelDegree
	)
	if err = ip.Validate(); err != nil {
		return
	}
	ip.Print(os.Stderr)
	if method, err = InputParameters.NewMethodType(ip.Method); err != nil {
		return
	}
	if mi.OutputFile != "" {
		outputFile = mi.OutputFile
	}
	if ip.ParallelDegree != 0 {
		np = ip.ParallelDegree
	}
	if Z, err = readfiles.ReadGrid(ip.Grid...); err != nil {
		return
	}
	if S, T, err = readfiles.ReadQueries(ip.Queries); err != nil {
		return
	}
	if len(S) == 0 {
		return fmt.Errorf("%s: no query points", ip.Queries)
	}
	rows, cols, layers := Z.Dims()
	fmt.Fprintf(os.Stderr, "Grid: %d x %d, %d layers, %d query points\n", rows, cols, layers, len(S))
	for k := 0; k < layers; k++ {
		L := Z.LayerMatrix(k)
		fmt.Fprintf(os.Stderr, "[%g, %g]\t\t= Layer %d range\n", mat.Min(L), mat.Max(L), k)
	}
	F := utils.NewArray3D(len(S), 1, layers)
	start := time.Now()
	switch method {
	case InputParameters.Operator:
		op := interp2d.NewOperator(rows, cols, S, T)
		op.Apply(Z, F)
	default:
		interp2d.BilinearParallel(Z, S, T, F, np)
	}
	fmt.Fprintf(os.Stderr, "Interpolated in %v using %s, %d undefined values\n",
		time.Since(start), method, utils.CountNan(F))
	fmt.Fprintln(os.Stderr, utils.GetMemUsage())
	return writeOutput(outputFile, ip.Title, S, T, F, stdout)
}

func writeOutput(outputFile, title string, S, T []float64, F utils.Array3D, stdout io.Writer) (err error) {
	var (
		w    = stdout
		file *os.File
	)
	if outputFile != "" {
		if file, err = os.Create(outputFile); err != nil {
			return
		}
		defer func() {
			if cerr := file.Close(); err == nil {
				err = cerr
			}
		}()
		w = file
	}
	if strings.EqualFold(filepath.Ext(outputFile), ".json") {
		return readfiles.WriteJSON(w, title, S, T, F)
	}
	return readfiles.WriteCSV(w, S, T, F)
}
