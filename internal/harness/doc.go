// Package harness runs sample queries against declarative expectations.
//
// # Scenario Format
//
// Scenarios are YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario checks"
//	sample: left-outer-join
//	assertions:
//	  - type: count
//	    count: 21
//	  - type: contains
//	    value: { category: Vegetables, product: "(No products)" }
//
// # Assertion Types
//
//   - equals: the whole output equals value
//   - contains: the output is an array holding an element equal to value
//   - count: the output is an array of exactly count elements
//   - first: the output is an array whose first element equals value
//   - error: the sample fails with the operator error code
//
// Values are compared by canonical JSON, so key order in the YAML does not
// matter and money amounts are written as strings ("21.00").
//
// An error assertion cannot be combined with any other assertion.
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/select.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, msg := range result.Errors {
//	        log.Println(msg)
//	    }
//	}
package harness
