/*
Package forkpath implements a branching conversational form: a stateless
engine that walks a caller through a fixed decision tree of questions and
produces a final summary of the answers.

The caller owns all conversation state. Every call passes the full transcript
of prior answers plus the newest input; the engine returns either the next
question or the finished summary together with the extended transcript. No
session state lives server-side, so the engine can back any number of
concurrent conversations without synchronization.

	eng, err := forkpath.New()
	if err != nil {
		log.Fatal(err)
	}

	res, err := eng.Advance(ctx, "Italian", nil)
	// res.Question -> "Do you prefer pasta or pizza?"

	res, err = eng.Advance(ctx, "Pizza", res.Transcript)
	// ...

Custom trees come from a YAML document, the dsl package, or any
ports.GraphSource implementation, and are validated at construction time.
*/
package forkpath
