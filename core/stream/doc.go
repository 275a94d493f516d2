// Package stream provides lazy, pull-driven batching over fallible
// sequences.
//
// Every helper operates on iter.Seq2[T, error]: a sequence whose steps either
// carry a value or report why the stream cannot continue. Producers stay
// lazy; nothing upstream runs until a consumer asks for the next value.
//
// # Helpers
//
//   - Chunk regroups a sequence into fixed-size slices. The final slice may
//     be short, and an empty trailing slice is never produced.
//   - Take caps a sequence at n values.
//   - Collect drains a sequence into a slice, stopping at the first error.
//   - Cursor turns a sequence into pull-style iteration whose position
//     survives between calls, for consumers that fetch one step at a time.
//
// # Error Propagation
//
// An error ends the sequence: Chunk yields the error instead of a partial
// batch, and a Cursor reports it on the pull that encounters it. Values
// delivered before the error remain valid.
//
// # Usage
//
//	batches := stream.Chunk(records, 10)
//	cursor := stream.NewCursor(batches)
//	defer cursor.Stop()
//	for {
//		batch, err, ok := cursor.Next()
//		if !ok {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		process(batch)
//	}
package stream
