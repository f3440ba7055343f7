package model

import "time"

// SafetyCheck is one named safety verification with a human-readable outcome.
type SafetyCheck struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// SafetyChecks holds the four fixed checks every assessment reports.
type SafetyChecks struct {
	FireSafety        SafetyCheck `json:"fire_safety"`
	WeightLimit       SafetyCheck `json:"weight_limit"`
	TempRequirement   SafetyCheck `json:"temp_requirement"`
	DispatchProximity SafetyCheck `json:"dispatch_proximity"`
}

// Rejection records why one zone was excluded from the eligible set.
type Rejection struct {
	Zone       string `json:"zone"`
	Reason     string `json:"reason"`
	Regulation string `json:"regulation"`
}

// SafetyAssessment is the output of the safety rule engine.
// Invariant: Mandatory != "" implies Eligible == [Mandatory].
// Invariant: every catalog zone appears in exactly one of Eligible or Rejected.
type SafetyAssessment struct {
	Eligible  []string     `json:"eligible_zones"`
	Mandatory string       `json:"mandatory_zone,omitempty"`
	Rejected  []Rejection  `json:"rejected_zones"`
	Checks    SafetyChecks `json:"safety_checks"`
}

// ReasoningResult is one zone selection attempt by the reasoning provider.
type ReasoningResult struct {
	Zone       string        `json:"zone,omitempty"`
	Confidence Confidence    `json:"confidence,omitempty"`
	Reasoning  string        `json:"reasoning,omitempty"`
	Latency    time.Duration `json:"latency"`
	Success    bool          `json:"success"`
	Err        string        `json:"error,omitempty"`
	Backend    string        `json:"backend,omitempty"`
}

// Decision is the terminal artifact of one pipeline run. On success the
// zone fields are set; on failure only Error and Assessment are meaningful.
// Immutable once returned.
type Decision struct {
	Success    bool             `json:"success"`
	Zone       string           `json:"zone,omitempty"`
	ZoneName   string           `json:"zone_name,omitempty"`
	Profile    ZoneProfile      `json:"zone_profile,omitzero"`
	Confidence Confidence       `json:"confidence,omitempty"`
	Reasoning  string           `json:"reasoning,omitempty"`
	Elapsed    time.Duration    `json:"elapsed"`
	Mandatory  bool             `json:"mandatory"`
	Assessment SafetyAssessment `json:"assessment"`
	Error      string           `json:"error,omitempty"`
	AuditID    string           `json:"audit_id,omitempty"`
}

// AuditEntry is one append-only audit log record. FinalZone starts equal to
// AIZone and diverges only through a human override.
type AuditEntry struct {
	ID             string     `json:"id"`
	ItemID         string     `json:"item_id"`
	Product        string     `json:"product"`
	AIZone         string     `json:"ai_zone"`
	FinalZone      string     `json:"final_zone"`
	Overridden     bool       `json:"overridden"`
	OverrideReason string     `json:"override_reason,omitempty"`
	Confidence     Confidence `json:"confidence"`
	Mandatory      bool       `json:"mandatory"`
	CreatedAt      time.Time  `json:"created_at"`
}
