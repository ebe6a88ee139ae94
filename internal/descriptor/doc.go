// Package descriptor derives display descriptors from metric key paths and
// renders them as catalogue entries.
//
// A descriptor is built from the path text alone:
//   - the name joins the path segments with underscores and drops the
//     namespace prefix (memory_flow_ by default);
//   - the display name joins the segments with slashes;
//   - the format function is chosen by substring: "bytes" selects
//     formatBytes, otherwise "perc" selects formatPercent, otherwise
//     formatInstructions.
//
// Rendered entries look like:
//
//	general_l2_cache_hit_perc: {
//	    name: 'general/l2_cache_hit_perc',
//	    display_name: 'general/l2_cache_hit_perc',
//	    hint: '',
//	    format_function: formatPercent,
//	    help_text: 'This is a detailed explanation something',
//	    lower_better: true
//	},
//
// The name slot carries the display form, matching existing catalogues.
package descriptor
