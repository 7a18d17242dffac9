package main

import (
	"reflect"
	"testing"
)

func TestExtractWords(t *testing.T) {
	t.Parallel()

	text := "Ghost in the WIRE, ghost in the shell; ice ICE relay-node."
	got := extractWords(text)
	want := []string{"ghost", "node", "relay", "shell", "wire"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("extractWords() = %v, want %v", got, want)
	}
}

func TestBucketWords(t *testing.T) {
	t.Parallel()

	vocabulary := bucketWords([]string{"alpha", "breach", "cipher", "daemon", "echo"})

	if want := []string{"ALPHA", "ECHO"}; !reflect.DeepEqual(vocabulary.Prefixes, want) {
		t.Fatalf("unexpected prefixes %v, want %v", vocabulary.Prefixes, want)
	}
	if want := []string{"BREACH"}; !reflect.DeepEqual(vocabulary.Middles, want) {
		t.Fatalf("unexpected middles %v, want %v", vocabulary.Middles, want)
	}
	if want := []string{"cipher"}; !reflect.DeepEqual(vocabulary.Suffixes, want) {
		t.Fatalf("unexpected suffixes %v, want %v", vocabulary.Suffixes, want)
	}
	if want := []string{"Daemon."}; !reflect.DeepEqual(vocabulary.Extras, want) {
		t.Fatalf("unexpected extras %v, want %v", vocabulary.Extras, want)
	}
}

func TestSentenceCase(t *testing.T) {
	t.Parallel()

	if got := sentenceCase("breach"); got != "Breach" {
		t.Fatalf("sentenceCase(breach) = %q", got)
	}
	if got := sentenceCase(""); got != "" {
		t.Fatalf("sentenceCase empty = %q", got)
	}
}
