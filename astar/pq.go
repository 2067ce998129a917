// SPDX-License-Identifier: MIT

package astar

import "github.com/katalvlaran/lowerbound/core"

type queueItem struct {
	node   *core.Vertex
	gScore float64
	fCost  float64
	seq    uint64
}

// priorityQueue is a min-heap ordered by fCost, then insertion order.
type priorityQueue []*queueItem

func (queue priorityQueue) Len() int { return len(queue) }
func (queue priorityQueue) Less(i, j int) bool {
	if queue[i].fCost != queue[j].fCost {
		return queue[i].fCost < queue[j].fCost
	}
	return queue[i].seq < queue[j].seq
}
func (queue priorityQueue) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *priorityQueue) Push(x any) {
	*queue = append(*queue, x.(*queueItem))
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
