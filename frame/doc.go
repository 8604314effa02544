// Package frame implements the in-memory table that the rest of framed operates on.
//
// A Frame is an ordered collection of named columns. Each column holds one
// dynamically typed value per row, and all columns are aligned by row index.
// Column order is significant and preserved by every operation.
//
// Frames are value-oriented: operations like AddColumn and DropColumns return
// a new Frame and never modify their receiver. This keeps transformations such
// as one-hot encoding pure, and callers decide whether to discard the
// original.
//
// # Basic Usage
//
//	f, err := frame.New(
//	    frame.Col("id", 1, 2, 3),
//	    frame.Col("color", "red", "blue", "red"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	col, _ := f.Column("color")
//	fmt.Println(col.Values) // [red blue red]
//
// Missing values are represented as nil and stringify as "NA". See the encode
// package for categorical encoders built on top of Frame.
package frame
