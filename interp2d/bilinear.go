package interp2d

import (
	"fmt"
	"math"
	"sync"

	"github.com/notargets/gointerp/utils"
)

/*
Bilinear interpolates every layer of Z at the query points (S[n], T[n]) and
writes the result for query n and layer i into F.DataP[n + i*Q]. F must hold
len(S) values per layer and as many layers as Z. Queries outside the grid
produce NaN in every layer.
*/
func Bilinear(Z utils.Array3D, S, T []float64, F utils.Array3D) {
	checkShapes(Z, S, T, F)
	bilinearRange(Z, S, T, F, 0, len(S))
}

/*
BilinearParallel shards the queries into ParallelDegree contiguous buckets and
interpolates each bucket in its own goroutine. Every goroutine writes a
disjoint range of F, the result is identical to Bilinear.
*/
func BilinearParallel(Z utils.Array3D, S, T []float64, F utils.Array3D, ParallelDegree int) {
	checkShapes(Z, S, T, F)
	if ParallelDegree < 2 || len(S) < ParallelDegree {
		bilinearRange(Z, S, T, F, 0, len(S))
		return
	}
	var (
		pm = utils.NewPartitionMap(ParallelDegree, len(S))
		wg = sync.WaitGroup{}
	)
	for np := 0; np < pm.ParallelDegree; np++ {
		if pm.GetBucketDimension(np) == 0 {
			continue
		}
		wg.Add(1)
		go func(np int) {
			nMin, nMax := pm.GetBucketRange(np)
			bilinearRange(Z, S, T, F, nMin, nMax)
			wg.Done()
		}(np)
	}
	wg.Wait()
}

func bilinearRange(Z utils.Array3D, S, T []float64, F utils.Array3D, nMin, nMax int) {
	var (
		rows, cols, layers = Z.Dims()
		zL                 = make([][]float64, layers)
		fL                 = make([][]float64, layers)
		nan                = math.NaN()
	)
	for i := range zL {
		zL[i], fL[i] = Z.Layer(i), F.Layer(i)
	}
	for n := nMin; n < nMax; n++ {
		c, ok := NewCell(S[n], T[n], rows, cols)
		for i := 0; i < layers; i++ {
			if ok {
				fL[i][n] = c.Eval(zL[i])
			} else {
				fL[i][n] = nan
			}
		}
	}
}

func checkShapes(Z utils.Array3D, S, T []float64, F utils.Array3D) {
	var (
		_, _, layers  = Z.Dims()
		_, _, fLayers = F.Dims()
	)
	switch {
	case len(S) != len(T):
		panic(fmt.Errorf("coordinate lengths differ: len(S) = %v, len(T) = %v", len(S), len(T)))
	case F.LayerStride() != len(S):
		panic(fmt.Errorf("output holds %v values per layer, have %v queries", F.LayerStride(), len(S)))
	case fLayers != layers:
		panic(fmt.Errorf("output has %v layers, grid has %v", fLayers, layers))
	}
}
