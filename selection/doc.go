// Package selection implements text selection over a laid-out document
// tree that it does not own.
//
// The tree is reached only through dom.Element and dom.Document. Text
// leaves are split per rendered word, the tree carries no document-order
// index, and the selection must keep up with pointer-drag input. The
// package therefore offers:
//
//   - bounded tree walks (FirstTextLeaf, ClosestTextLeaf, NextTextLeaf);
//   - a document-order test (IsBefore) with a one-entry cache inside
//     Selection;
//   - character hit testing (HitTestChar, FindCharAtX) by incremental
//     prefix measurement;
//   - per-leaf highlight rectangles (TextRect) and selected text.
//
// Character offsets are code-point indexes into one element's own text.
//
// A Selection is bound to one document layout. It records the
// document's generation when a selection starts and clears itself as
// soon as the generation moves on, so element references from an old
// layout are never consulted again. Selection is not safe for
// concurrent use.
package selection
