package collector

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/model"
	"github.com/AdamBrousseau/openjdk-jenkins-helper/internal/util"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

func init() {
	Register(func() RegisteredCollector { return &KubernetesCollector{} })
}

// KubernetesCollector lists cluster nodes used as CI workers.
type KubernetesCollector struct {
	Kubeconfig    string
	Context       string
	LabelSelector string
	// Client overrides kubeconfig discovery (tests use a fake clientset).
	Client kubernetes.Interface
}

func (kc *KubernetesCollector) Metadata() CollectorMetadata {
	return CollectorMetadata{
		Name:        "kubernetes",
		DisplayName: "Kubernetes",
		Description: "Collects worker nodes, labels and readiness from a Kubernetes cluster",
		ConfigKey:   "kubernetes",
		DetectHint:  "kubeconfig",
	}
}

func (kc *KubernetesCollector) Enabled(sources map[string]any) bool {
	_, ok := sources["kubernetes"].(map[string]any)
	return ok
}

func (kc *KubernetesCollector) Configure(section map[string]any) error {
	if section == nil {
		return nil
	}
	if v, ok := section["kubeconfig"].(string); ok {
		kc.Kubeconfig = util.ExpandPath(v)
	}
	if v, ok := section["context"].(string); ok {
		kc.Context = v
	}
	if v, ok := section["label_selector"].(string); ok {
		kc.LabelSelector = v
	}
	return nil
}

func (kc *KubernetesCollector) Validate() []ValidationError {
	var errs []ValidationError
	if kc.Kubeconfig != "" {
		if _, err := os.Stat(kc.Kubeconfig); err != nil {
			errs = append(errs, ValidationError{
				Field:      "sources.kubernetes.kubeconfig",
				Message:    fmt.Sprintf("file not found: %s", kc.Kubeconfig),
				Suggestion: "check the path to your kubeconfig file",
			})
		}
	}
	if kc.Client == nil {
		if _, err := kc.clientConfig().ClientConfig(); err != nil {
			errs = append(errs, ValidationError{
				Field:      "sources.kubernetes",
				Message:    fmt.Sprintf("no usable cluster config: %v", err),
				Suggestion: "set sources.kubernetes.kubeconfig or KUBECONFIG",
			})
		}
	}
	return errs
}

func (kc *KubernetesCollector) Collect(ctx context.Context, inv *model.Inventory) error {
	client, err := kc.client()
	if err != nil {
		return err
	}

	list, err := client.CoreV1().Nodes().List(ctx, metav1.ListOptions{
		LabelSelector: kc.LabelSelector,
	})
	if err != nil {
		return fmt.Errorf("listing nodes: %w", err)
	}

	for i := range list.Items {
		inv.AddNode("kubernetes", nodeFromKube(&list.Items[i]))
	}
	return nil
}

func (kc *KubernetesCollector) clientConfig() clientcmd.ClientConfig {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kc.Kubeconfig != "" {
		rules.ExplicitPath = kc.Kubeconfig
	}
	overrides := &clientcmd.ConfigOverrides{CurrentContext: kc.Context}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides)
}

func (kc *KubernetesCollector) client() (kubernetes.Interface, error) {
	if kc.Client != nil {
		return kc.Client, nil
	}
	restConfig, err := kc.clientConfig().ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("loading kube config: %w", err)
	}
	client, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("creating kubernetes client: %w", err)
	}
	kc.Client = client
	return client, nil
}

func nodeFromKube(n *corev1.Node) *model.Node {
	node := &model.Node{
		Name:     n.Name,
		HostName: nodeHost(n),
		Labels:   kubeLabels(n.Labels),
	}

	ready := findCondition(n.Status.Conditions, corev1.NodeReady)
	switch {
	case ready == nil:
		node.OfflineReason = "no Ready condition reported"
	case ready.Status != corev1.ConditionTrue:
		node.OfflineReason = ready.Message
		if node.OfflineReason == "" {
			node.OfflineReason = ready.Reason
		}
	case n.Spec.Unschedulable:
		node.OfflineReason = "node is cordoned"
	default:
		node.Online = true
	}
	return node
}

// kubeLabels flattens a label map into the dotted label convention: a label
// with an empty or "true" value contributes its key, any other value is
// appended to the key ("hw.arch=x86_64" becomes "hw.arch.x86_64").
// Keys are sorted so the result does not depend on map order.
func kubeLabels(labels map[string]string) []string {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		v := labels[k]
		if v == "" || strings.EqualFold(v, "true") {
			out = append(out, k)
			continue
		}
		out = append(out, k+"."+v)
	}
	return out
}

func nodeHost(n *corev1.Node) string {
	for _, t := range []corev1.NodeAddressType{corev1.NodeHostName, corev1.NodeInternalIP, corev1.NodeExternalIP} {
		for _, a := range n.Status.Addresses {
			if a.Type == t && a.Address != "" {
				return a.Address
			}
		}
	}
	return ""
}

func findCondition(conds []corev1.NodeCondition, t corev1.NodeConditionType) *corev1.NodeCondition {
	for i := range conds {
		if conds[i].Type == t {
			return &conds[i]
		}
	}
	return nil
}
