// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"sort"
	"strconv"
)

// A Signal is a pending change: Junction will become Level at Time.
//
type Signal struct {
	Junction Junction
	Level    bool
	Time     Time
}

func (s Signal) String() string {
	return "@" + strconv.FormatInt(int64(s.Time), 10) + " " +
		strconv.Itoa(int(s.Junction)) + "=" + strconv.FormatBool(s.Level)
}

// queue holds pending signals sorted by ascending time. Signals with equal
// times keep their insertion order.
type queue []Signal

// push inserts s after every signal scheduled at or before s.Time.
func (q *queue) push(s Signal) {
	sq := *q
	i := sort.Search(len(sq), func(i int) bool { return sq[i].Time > s.Time })
	sq = append(sq, Signal{})
	copy(sq[i+1:], sq[i:])
	sq[i] = s
	*q = sq
}

// due returns the time of the earliest signals and how many of them share it.
// q must not be empty.
func (q queue) due() (Time, int) {
	t := q[0].Time
	return t, sort.Search(len(q), func(i int) bool { return q[i].Time > t })
}

// drop removes the first n signals.
func (q *queue) drop(n int) {
	sq := *q
	m := copy(sq, sq[n:])
	*q = sq[:m]
}

// latest returns the level of the signal with the greatest time scheduled
// for junction j, if any.
func (q queue) latest(j Junction) (level bool, ok bool) {
	for i := len(q) - 1; i >= 0; i-- {
		if q[i].Junction == j {
			return q[i].Level, true
		}
	}
	return false, false
}
