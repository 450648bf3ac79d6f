package model

// Inventory is the merged set of nodes reported by all enabled sources,
// kept in the order each node was first seen.
type Inventory struct {
	ControllerURL string
	nodes         []*Node
	index         map[string]*Node
}

// NewInventory creates an initialized Inventory.
func NewInventory() *Inventory {
	return &Inventory{
		index: make(map[string]*Node),
	}
}

// AddNode inserts a node, or merges it into an existing node with the same
// name. Labels are unioned, the first non-empty hostname is kept, and a node
// reported offline by any source stays offline.
func (inv *Inventory) AddNode(source string, n *Node) {
	if existing, ok := inv.Node(n.Name); ok {
		if existing.HostName == "" {
			existing.HostName = n.HostName
		}
		for _, l := range n.Labels {
			if !existing.HasLabel(l) {
				existing.Labels = append(existing.Labels, l)
			}
		}
		if existing.Online && !n.Online {
			existing.Online = false
			existing.OfflineReason = n.OfflineReason
		}
		existing.Sources = append(existing.Sources, source)
		return
	}

	n.Sources = append(n.Sources, source)
	inv.nodes = append(inv.nodes, n)
	inv.index[n.Name] = n
}

// Node looks up a node by name.
func (inv *Inventory) Node(name string) (*Node, bool) {
	n, ok := inv.index[name]
	return n, ok
}

// Nodes returns the nodes in first-seen order.
func (inv *Inventory) Nodes() []*Node {
	return inv.nodes
}

// Len returns the number of distinct nodes.
func (inv *Inventory) Len() int {
	return len(inv.nodes)
}
