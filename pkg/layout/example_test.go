package layout_test

import (
	"fmt"

	"github.com/matzehuels/cardlayout/pkg/behavior"
	"github.com/matzehuels/cardlayout/pkg/catalog"
	"github.com/matzehuels/cardlayout/pkg/layout"
)

func ExampleClassify() {
	action := behavior.Behavior{
		Triggers: []behavior.Trigger{{Kind: behavior.TriggerManual}},
		Inputs:   []behavior.ResourceItem{{Kind: "energy", Amount: -1}},
		Outputs:  []behavior.ResourceItem{{Kind: "steel", Amount: 1}},
	}
	mine := behavior.Behavior{
		Outputs: []behavior.ResourceItem{{Kind: "steel-production", Amount: 1}},
	}

	fmt.Println(layout.Classify(action, catalog.Default()))
	fmt.Println(layout.Classify(mine, catalog.Default()))
	// Output:
	// manual-action
	// immediate-production
}

func ExampleAnalyze() {
	c := catalog.Default()
	small := layout.Analyze(behavior.ResourceItem{Kind: "plants", Amount: 2}, 7, false, c)
	large := layout.Analyze(behavior.ResourceItem{Kind: "plants", Amount: 8}, 7, false, c)
	unknown := layout.Analyze(behavior.ResourceItem{Kind: "relic", Amount: -1}, 7, false, c)

	fmt.Println(small.Mode, small.Units)
	fmt.Println(large.Mode, large.Units)
	fmt.Println(unknown.Token)
	// Output:
	// individual 2
	// numeric 1
	// -1 relic
}

func ExampleBuild() {
	b := behavior.Behavior{
		Outputs: []behavior.ResourceItem{
			{Kind: "plants", Amount: 3},
			{Kind: "heat", Amount: 3},
			{Kind: "energy", Amount: 2},
		},
	}
	c := layout.Classify(b, nil)
	p := layout.Build(b, c, layout.DefaultBudget(), false, nil)

	fmt.Println(c, p.Units, p.RowCount)
	for _, row := range p.Rows {
		fmt.Println(layout.SumUnits(row))
	}
	// Output:
	// immediate-effect 8 2
	// 6
	// 2
}
