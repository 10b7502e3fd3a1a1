// Package dax renders workflow graphs as Pegasus DAX 3.6 XML documents,
// the abstract-job-graph interchange format consumed by the Pegasus
// workflow management system and compatible visualizers.
//
// # Document Shape
//
// The output is produced in one deterministic streaming pass:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<adag xmlns="..." xmlns:xsi="..." xsi:schemaLocation="..." version="3.6">
//	  <job id="A" name="A" runtime="tbd">
//	    <uses file="x" link="input" register="true" transfer="true"
//	          optional="false" type="data" size="tbd"></uses>
//	  </job>
//	  ...all remaining job elements...
//	  <child ref="B">
//	    <parent ref="A"></parent>
//	  </child>
//	</adag>
//
// Jobs appear in the graph's native vertex order, dependencies in native
// edge order, and every job element precedes every child element. A graph
// edge A→B becomes child B with parent A: the schema speaks in terms of
// which job depends on which, so the direction is inverted on purpose.
//
// The runtime and size attributes carry the literal placeholder "tbd".
// Nothing in this pipeline measures runtimes or file sizes yet, but the
// schema requires the attributes and downstream consumers check for them.
//
// # Contract
//
// Rendering is a pure, one-shot, stateless projection: graph in, document
// out. The input graph is never modified and must not be mutated by other
// goroutines while a render call is in flight. Only two failures exist -
// a nil edge endpoint (PRECONDITION_VIOLATION, a contract breach by the
// caller) and a destination write failure (IO_ERROR). Neither is retried
// here, and a failed render leaves an incomplete document for the caller
// to discard.
package dax
