// Package plotkit builds pairwise similarity and correlation matrices over
// collections of groups and draws them as publication-style heatmaps.
//
// plotkit is aimed at analysis services and command line tooling that need
// the same figure conventions everywhere: one global theme, a small set of
// annotation helpers and PNG/SVG/PDF export.
//
// # Features
//
// - Pairwise matrices: Jaccard similarity, Pearson/Spearman/Kendall correlation or any custom function
// - Row-parallel evaluation with a configurable worker count
// - Heatmaps with triangle masks, cell annotations and colour bars
// - Light/dark themes, LaTeX text and YAML theme files
// - Structured errors with stack traces and zerolog logging
//
// # Installation
//
//	go get github.com/YuminosukeSato/plotkit
//
// # Quick Start
//
//	package main
//
//	import (
//	    "log"
//
//	    "github.com/YuminosukeSato/plotkit/pairwise"
//	    "github.com/YuminosukeSato/plotkit/plotting"
//	)
//
//	func main() {
//	    groups := [][]string{
//	        {"go", "rust", "zig"},
//	        {"go", "python"},
//	        {"rust", "zig", "c"},
//	    }
//
//	    fig, ax, err := plotting.SinglePlot()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    hm, err := plotting.SimilarityHeatmap(ax, groups,
//	        pairwise.SimilarityPreset[string](pairwise.Jaccard),
//	        plotting.WithTickLabels("a", "b", "c"),
//	        plotting.WithMask(plotting.MaskUpper),
//	        plotting.WithAnnotations(plotting.HeatmapAnnotDefaults()),
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := plotting.ColorBar(ax, hm, plotting.HeatmapCBarDefaults()); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := plotting.Save(fig, "similarity.png"); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Packages
//
//   - pairwise: SimilarityMatrix and CorrelationMatrix
//   - metrics: Jaccard index and correlation coefficients
//   - preprocessing: ranking and matrix extent helpers
//   - plotting: figures, annotations, heatmaps and export
//   - core/parallel: row-parallel execution
//   - pkg/errors, pkg/log: error types and structured logging
//   - cmd/plotkit: command line interface
//
// # Performance
//
// Matrix construction evaluates the scoring function n² times. Rows are
// independent, so pairwise.WithWorkers(-1) spreads them over every CPU core.
package plotkit
