// Package fileutil provides the directory enumeration used by minigrep's tree scan.
//
// ScanDirectory walks a directory tree and returns every regular file under it,
// sorted by absolute path, while collecting entries it could not inspect instead
// of failing.
//
// # Key Features
//
//   - Recursive traversal with an optional depth limit
//   - Include filtering with doublestar globs ("*.go", "**/testdata/*.txt")
//   - Directory exclusion by name or glob (".git", "node_*")
//   - Optional skipping of hidden files and directories
//   - Symlinks to regular files are included; dangling links and directory links are not
//   - Sorted, deterministic output
//   - Error tolerance (unreadable entries are collected, scanning continues)
//
// # Usage Examples
//
// All files under a directory:
//
//	result, err := fileutil.ScanDirectory("/path/to/dir", fileutil.ScanOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, file := range result.Files {
//	    fmt.Println(file)
//	}
//
// Go sources outside vendor and .git:
//
//	result, err := fileutil.ScanDirectory(".", fileutil.ScanOptions{
//	    Include:     []string{"*.go"},
//	    ExcludeDirs: []string{".git", "vendor"},
//	})
//
// Checking skipped entries:
//
//	for _, skipped := range result.Skipped {
//	    log.Printf("skipped: %v", skipped)
//	}
//
// # Error Handling
//
// Only problems with the root itself (missing, not a directory) and malformed
// globs are returned as errors. Permission errors on subdirectories and entries
// that cannot be stat'ed end up in ScanResult.Skipped.
package fileutil
