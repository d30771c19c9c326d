// Package merge folds extracted zone registries into a zoning dataset and
// builds that dataset from an inspection workbook.
//
// A dataset is a JSON array of objects, each carrying a "zone" code plus
// any number of other fields. Registry values are written under
// snake_case keys (marge_avant, marge_arriere, marge_laterale,
// marge_laterale_combinee, dominante, usages), with margins that read as
// numbers stored as numbers.
//
// A registry zone updates every entry whose zone equals it or extends it
// with a "-" suffix, so "604" updates both "604" and "604-Ia". Zones with
// no matching entry are appended. The dataset is kept in natural zone order.
package merge
