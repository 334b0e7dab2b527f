/*
Package operation implements the core business logic for annotating files.

	+-------------+
	|  Annotate   |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+------+
	|      |      |      |
	walker scanner rewrite

🎯 Purpose:
- Orchestrates the walk over a source tree
- Runs the scan + insert pipeline on each discovered file
- Tallies discovered/modified/skipped and renders the run report

🔄 Flow:
1. Receives file paths from the walker, in traversal order
2. Resolves each file's insertion point via the scanner
3. Delegates the splice and write-back to rewrite
4. Reports per-file outcome and the final summary via the logger

⚡ Key Responsibilities:
- One-way pipeline coordination (no component sees another's state)
- Per-file error isolation: an unreadable file is a skip, never a crash
- Strictly sequential processing, deterministic output order

📝 Design Philosophy:
Each file is the unit of isolation. The operator owns nothing but the
counters; everything else is borrowed per file and discarded. The run is
embarrassingly parallel in principle, but stays sequential so output order
and counter updates need no synchronization.

🔍 Example:

	op, err := operation.New(operation.Options{
		Config: cfg,
		Logger: consoleLogger,
	})
	if err != nil {
		return err
	}
	counters, err := op.Annotate(ctx, root)
*/
package operation
