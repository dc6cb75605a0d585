// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package latch

import (
	"testing"
	"time"
)

func TestAwaitForTimesOutBeforeCountDown(t *testing.T) {
	l := New(1)
	if got := l.AwaitFor(50 * time.Millisecond); got {
		t.Fatal("AwaitFor returned true before CountDown")
	}
	l.CountDown()
}

func TestAwaitForReturnsTrueAfterCountDown(t *testing.T) {
	l := New(1)
	go func() {
		time.Sleep(10 * time.Millisecond)
		l.CountDown()
	}()
	if got := l.AwaitFor(time.Second); !got {
		t.Fatal("AwaitFor returned false after CountDown within timeout")
	}
}

func TestExtraCountDownIsError(t *testing.T) {
	l := New(1)
	if err := l.CountDown(); err != nil {
		t.Fatalf("first CountDown: %v", err)
	}
	if err := l.CountDown(); err != ErrExtraCountDown {
		t.Fatalf("second CountDown: got %v, want ErrExtraCountDown", err)
	}
}
