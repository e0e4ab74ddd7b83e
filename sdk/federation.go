package sdk

// Instance is a federated server known to this one.
type Instance struct {
	ID        int32   `json:"id"`
	Domain    string  `json:"domain"`
	Published string  `json:"published"`
	Updated   *string `json:"updated,omitempty"`
	Software  *string `json:"software,omitempty"`
	Version   *string `json:"version,omitempty"`
}

// FederatedInstances splits known servers by federation state.
type FederatedInstances struct {
	Linked  []Instance `json:"linked"`
	Allowed []Instance `json:"allowed"`
	Blocked []Instance `json:"blocked"`
}

// GetFederatedInstances lists the servers this instance federates with.
type GetFederatedInstances struct {
	Auth *string `json:"auth,omitempty"`
}

// GetFederatedInstancesResponse is the reply to GetFederatedInstances.
// FederatedInstances is absent when federation is disabled.
type GetFederatedInstancesResponse struct {
	FederatedInstances *FederatedInstances `json:"federated_instances,omitempty"`
}
