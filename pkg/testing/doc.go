// Package testing provides a test harness for interfaces built on package
// ui.
//
// # Quick Start
//
// Create a tester, build controls into it, pump and assert:
//
//	func TestSubmit(t *testing.T) {
//	    tester := uitest.NewTester(t, graphics.V2(200, 100))
//	    widgets.NewButtonBuilder(ui.NewWidgetBuilder().
//	        WithName("submit").WithWidth(60).WithHeight(20)).
//	        Build(tester.UI())
//	    tester.Pump()
//
//	    if err := tester.Click(uitest.ByName("submit")); err != nil {
//	        t.Fatal(err)
//	    }
//	    if len(uitest.Collected[widgets.ButtonClick](tester)) != 1 {
//	        t.Error("expected one click")
//	    }
//	}
//
// Pump drains the message queue and runs a layout pass. Every FromWidget
// message seen while pumping is kept until Collect is called.
//
// # Snapshot Testing
//
// Capture and compare the resolved geometry of the tree:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/settings.snapshot.json")
//
// Update snapshots with:
//
//	UI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/retained/pkg/testing"
package testing
