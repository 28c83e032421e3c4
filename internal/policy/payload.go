package policy

// Wire types for the Prism v3 access_control_policies endpoint.

type acpRequest struct {
	APIVersion string      `json:"api_version"`
	Metadata   acpMetadata `json:"metadata"`
	Spec       acpSpec     `json:"spec"`
}

type acpMetadata struct {
	Kind string `json:"kind"`
	UUID string `json:"uuid,omitempty"`
}

type acpSpec struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Resources   acpResources `json:"resources"`
}

type acpResources struct {
	RoleReference     reference   `json:"role_reference"`
	UserReferenceList []reference `json:"user_reference_list"`
	FilterList        filterList  `json:"filter_list"`
}

type reference struct {
	Kind string `json:"kind"`
	UUID string `json:"uuid"`
}

type filterList struct {
	ContextList []filterContext `json:"context_list"`
}

type filterContext struct {
	ScopeFilterExpressionList  []scopeExpression  `json:"scope_filter_expression_list,omitempty"`
	EntityFilterExpressionList []entityExpression `json:"entity_filter_expression_list"`
}

type scopeExpression struct {
	Operator      string         `json:"operator"`
	LeftHandSide  scopeSide      `json:"left_hand_side"`
	RightHandSide expressionSide `json:"right_hand_side"`
}

type entityExpression struct {
	Operator      string         `json:"operator"`
	LeftHandSide  entitySide     `json:"left_hand_side"`
	RightHandSide expressionSide `json:"right_hand_side"`
}

type scopeSide struct {
	ScopeType string `json:"scope_type"`
}

type entitySide struct {
	EntityType string `json:"entity_type"`
}

type expressionSide struct {
	UUIDList   []string `json:"uuid_list,omitempty"`
	Collection string   `json:"collection,omitempty"`
}

type acpResponse struct {
	Metadata acpMetadata `json:"metadata"`
}
