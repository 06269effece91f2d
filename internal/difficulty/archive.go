package difficulty

// Archive is an ordered multiset of per-evaluation scores, kept in a
// self-balancing (AVL) binary search tree. Inserts stay O(log n) and
// in-order traversal yields ascending scores, which keeps the door
// open for ordered analytics over a session without a redesign.
type Archive struct {
	root *archiveNode
	size int
}

type archiveNode struct {
	score  int
	count  int
	height int
	left   *archiveNode
	right  *archiveNode
}

// NewArchive returns an empty archive.
func NewArchive() *Archive {
	return &Archive{}
}

// Record inserts score, preserving duplicates.
func (a *Archive) Record(score int) {
	a.root = insertScore(a.root, score)
	a.size++
}

// Len is the number of recorded scores, duplicates included.
func (a *Archive) Len() int { return a.size }

// Min returns the smallest recorded score; ok is false when the
// archive is empty.
func (a *Archive) Min() (int, bool) {
	if a.root == nil {
		return 0, false
	}
	n := a.root
	for n.left != nil {
		n = n.left
	}
	return n.score, true
}

// Max returns the largest recorded score; ok is false when the archive
// is empty.
func (a *Archive) Max() (int, bool) {
	if a.root == nil {
		return 0, false
	}
	n := a.root
	for n.right != nil {
		n = n.right
	}
	return n.score, true
}

// Ascending returns every recorded score in ascending order,
// duplicates expanded.
func (a *Archive) Ascending() []int {
	out := make([]int, 0, a.size)
	var walk func(*archiveNode)
	walk = func(n *archiveNode) {
		if n == nil {
			return
		}
		walk(n.left)
		for i := 0; i < n.count; i++ {
			out = append(out, n.score)
		}
		walk(n.right)
	}
	walk(a.root)
	return out
}

func insertScore(n *archiveNode, score int) *archiveNode {
	if n == nil {
		return &archiveNode{score: score, count: 1, height: 1}
	}
	switch {
	case score < n.score:
		n.left = insertScore(n.left, score)
	case score > n.score:
		n.right = insertScore(n.right, score)
	default:
		n.count++
		return n
	}
	return rebalance(n)
}

func nodeHeight(n *archiveNode) int {
	if n == nil {
		return 0
	}
	return n.height
}

func balanceFactor(n *archiveNode) int {
	return nodeHeight(n.left) - nodeHeight(n.right)
}

func updateHeight(n *archiveNode) {
	n.height = 1 + max(nodeHeight(n.left), nodeHeight(n.right))
}

func rebalance(n *archiveNode) *archiveNode {
	updateHeight(n)
	bf := balanceFactor(n)
	switch {
	case bf > 1:
		if balanceFactor(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	case bf < -1:
		if balanceFactor(n.right) > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	default:
		return n
	}
}

func rotateLeft(n *archiveNode) *archiveNode {
	r := n.right
	n.right = r.left
	r.left = n
	updateHeight(n)
	updateHeight(r)
	return r
}

func rotateRight(n *archiveNode) *archiveNode {
	l := n.left
	n.left = l.right
	l.right = n
	updateHeight(n)
	updateHeight(l)
	return l
}
