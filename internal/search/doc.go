// Package search implements the search-and-highlight engine behind minigrep.
//
// The package has four layers, each built on the previous one:
//
//   - Compile turns a query into a reusable Matcher (case-insensitive by default).
//   - Matcher.MatchLine returns the non-overlapping match spans for a single line.
//   - ScanFile reads one file, splits it into lines and collects the matching ones.
//   - ScanTree and WalkTree apply ScanFile to every regular file under a directory,
//     skipping files that cannot be read instead of aborting the scan.
//
// # Offsets
//
// Span offsets are byte offsets into the line, matching Go's string indexing.
// Matches never split a UTF-8 sequence, so line[span.Start:span.End] is always
// valid text. Formatters must slice with the same unit.
//
// # Ordering
//
// Tree scans visit files in lexicographic order of their absolute paths, so two
// scans of an unchanged tree produce identical results.
//
// Usage:
//
//	m, err := search.Compile("duct", true)
//	if err != nil {
//	    return err
//	}
//	result, err := search.ScanTree(ctx, m, ".", search.TreeOptions{})
//	if err != nil {
//	    return err
//	}
//	for _, file := range result.Files {
//	    for _, line := range file.Lines {
//	        fmt.Printf("%s:%d: %s\n", file.Path, line.Number, line.Text)
//	    }
//	}
package search
