// Package csvio loads frames from and saves frames to CSV.
//
// Loading requires a header row and infers cell kinds per cell: recognized
// missing tokens ("", "NA", "NaN") become nil, parseable numbers become
// float64, "true"/"false" become bool, and everything else stays a string.
// A YAML column schema can override inference per column:
//
//	columns:
//	  id: int
//	  color: string
//	  score: float
//	  active: bool
//
//	schema, err := csvio.LoadSchemaFile("schema.yaml")
//	f, err := csvio.LoadFile("data.csv", csvio.WithSchema(schema))
//
// Saving writes the header row followed by each cell's display string; nil
// cells are written as "NA" and load back as nil.
package csvio
