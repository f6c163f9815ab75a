/*
Package domain defines the core types of the Forkpath conversation engine.

A conversation is a walk through a static decision tree of Questions. The
caller owns the entire conversation state as a Transcript of answered
questions and resends it on every call; the engine holds nothing between
calls. Branching is expressed per question as a mapping from a normalized
answer to the next question identifier, with TerminalID marking the end of a
path.
*/
package domain
