package forkpath_test

import (
	"context"
	"fmt"
	"log"

	"github.com/forkpath-dev/forkpath"
	"github.com/forkpath-dev/forkpath/pkg/domain"
)

func Example() {
	eng, err := forkpath.New()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// Empty input with an empty history asks the first question.
	res, err := eng.Advance(ctx, "", nil)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.Question.Prompt)

	// Each turn replays the history and answers the current question.
	var transcript domain.Transcript
	for _, answer := range []string{"Indian", "Biryani"} {
		res, err = eng.Advance(ctx, answer, transcript)
		if err != nil {
			log.Fatal(err)
		}
		transcript = res.Transcript
	}
	fmt.Println(res.Summary)

	// Output:
	// What kind of food are you in the mood for?
	// What kind of food are you in the mood for?: Indian
	// Great choice! Which Indian dish sounds good?: Biryani
}
