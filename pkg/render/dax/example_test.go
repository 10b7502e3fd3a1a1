package dax_test

import (
	"bytes"
	"fmt"

	"github.com/pegflow/daxport/pkg/render/dax"
	"github.com/pegflow/daxport/pkg/workflow"
)

func ExampleWrite() {
	g := workflow.New(nil)
	g.AddVertex(workflow.Vertex{ID: "A", Task: workflow.Task{
		Inputs: []workflow.Artifact{{Name: "x"}},
	}})
	g.AddVertex(workflow.Vertex{ID: "B"})
	g.AddEdge("A", "B")

	var buf bytes.Buffer
	if err := dax.Write(g, &buf, dax.Options{}); err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Println(buf.String())
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <adag xmlns="http://pegasus.isi.edu/schema/DAX" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://pegasus.isi.edu/schema/DAX http://pegasus.isi.edu/schema/dax-3.6.xsd" version="3.6">
	//   <job id="A" name="A" runtime="tbd">
	//     <uses file="x" link="input" register="true" transfer="true" optional="false" type="data" size="tbd"></uses>
	//   </job>
	//   <job id="B" name="B" runtime="tbd"></job>
	//   <child ref="B">
	//     <parent ref="A"></parent>
	//   </child>
	// </adag>
}
