// Package ir provides the in-memory value model for HCL documents.
//
// A Value is a tagged variant over seven types: null, bool, int,
// double, string, list and object. The parser builds Value trees
// bottom-up; nested values are exclusively owned by their container
// and Clone produces a deep copy.
//
// Objects support two addressing modes. Child operations (FindChild,
// SetChild, EraseChild) bind keys literally. Path operations (Find,
// Set, Erase, Has and the typed getters) tokenise their key as a
// dotted path, descending one object per segment. A key containing a
// literal dot, as parsed from a quoted key in source, is reachable
// only through the child operations.
//
// MergeObjects implements the HCL block fold: repeated statements at
// the same key promote the binding to a list.
package ir
