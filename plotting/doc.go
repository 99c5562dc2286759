// Package plotting provides helpers on top of gonum.org/v1/plot for laying
// out figures, annotating axes, drawing similarity and correlation heatmaps
// and exporting the result to PNG, SVG or PDF.
//
// Axes are declarative: helpers record titles, limits, ticks and plot
// elements on an *Axes, and a fresh *plot.Plot is built from that state
// every time a figure is rendered. Every helper validates its arguments and
// reports bad input as *errors.ValidationError.
//
//	fig, ax, err := plotting.SinglePlot()
//	hm, err := plotting.CorrelationHeatmap(ax, series, pairwise.CorrelationPreset(pairwise.Spearman))
//	err = plotting.ColorBar(ax, hm, plotting.HeatmapCBarDefaults())
//	err = plotting.SavePNG(fig, "corr.png", 300)
package plotting
