// fix-fixtures is a tool that rewrites retrace XML fixtures to match the output
// observed in a failed test run.
//
// fix-fixtures reads test-output.txt next to the tool and updates the
// fixtures in ../src/fixtures/xml. It takes no arguments.
//
// The test output contains one block per failing test:
//
//	=== FAILURE: InlineNoLineNumberTest ===
//	Expected:
//	Exception in thread "main" java.lang.NullPointerException
//	---
//	Actual:
//	Exception in thread "main" java.lang.NullPointerException
//		at com.android.tools.r8.naming.retrace.Main.main(Main.java)
//	---
//	Mapping:
//	com.android.tools.r8.naming.retrace.Main -> a:
//	=== END InlineNoLineNumberTest ===
//
// For each block, the <line> children of <retraced> in
// InlineNoLineNumberTest.xml are replaced by the Actual lines, and the <line>
// children of <mapping> by the Mapping lines. Everything else in the fixture
// is kept.
//
// Output:
//
//	Parsing test output...
//	Found 1 failing tests
//	✓ Updated InlineNoLineNumberTest.xml
//
//	============================================================
//	Summary: 1 fixtures updated, 0 errors
//	============================================================
package main
