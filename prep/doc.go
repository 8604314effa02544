// Package prep provides column-level data preparation: missing-value
// imputation and numeric scaling.
//
// Like the encode package, every function returns a new frame and leaves its
// input untouched. Missing values are nil cells plus the string tokens "",
// "NA" and "NaN" (see frame.IsMissing).
package prep
