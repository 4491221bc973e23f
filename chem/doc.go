// Package chem provides the chemical reference data and value types shared
// by the isodist packages.
//
// The package defines three shapes:
//
//  1. Isotope: the natural-abundance isotope pattern of a single atom of
//     one element, anchored at its monoisotopic mass.
//  2. IsotopeTable: an element-symbol keyed lookup of Isotope values.
//  3. Composition: an element-symbol keyed atom count for a molecule.
//
// All reference data is plain immutable values passed explicitly into the
// functions that need it. DefaultTable covers the averagine element set
// (C, H, N, O, S); callers with exotic chemistry can supply their own
// table with the same shape.
//
// Treat the packaged tables as read-only. They are shared process-wide and
// nothing guards them against mutation.
package chem
