package domain

// Resource identifies an entity type an operation targets.
type Resource string

const (
	ResourceDesign       Resource = "design"
	ResourceFavorite     Resource = "favorite"
	ResourceUser         Resource = "user"
	ResourceUserApproval Resource = "user_approval"
	ResourceSettings     Resource = "settings"
	ResourceUpload       Resource = "upload"
	ResourceAnalytics    Resource = "analytics"
	ResourceProfile      Resource = "profile"
	ResourceSession      Resource = "session"
)

// Action identifies what an operation does to its resource.
type Action string

const (
	ActionRead   Action = "read"
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// StandardAccess describes what a standard-role user may do under a rule.
type StandardAccess int

const (
	// StandardNone means standard users are always denied; admin only.
	StandardNone StandardAccess = iota
	// StandardAny means any approved user is allowed regardless of ownership.
	StandardAny
	// StandardOwner means a standard user is allowed only on resources they own.
	StandardOwner
)

// Rule is a single row of the static access policy table.
// Administrators are allowed under every rule once authenticated and approved;
// the fields here only constrain non-admin access.
type Rule struct {
	// Public operations need no identity at all.
	Public bool
	// Standard selects the access level for standard-role users.
	Standard StandardAccess
	// AllowPending permits the owner path even while the account awaits
	// approval. Only self-profile reads and logout carry this.
	AllowPending bool
}

type ruleKey struct {
	Resource Resource
	Action   Action
}

// rules is the per-entity access policy table. An operation absent from the
// table is denied for everyone, including administrators.
var rules = map[ruleKey]Rule{
	{ResourceDesign, ActionRead}:   {Standard: StandardAny},
	{ResourceDesign, ActionList}:   {Standard: StandardAny},
	{ResourceDesign, ActionCreate}: {Standard: StandardNone},
	{ResourceDesign, ActionUpdate}: {Standard: StandardNone},
	{ResourceDesign, ActionDelete}: {Standard: StandardNone},

	{ResourceFavorite, ActionCreate}: {Standard: StandardOwner},
	{ResourceFavorite, ActionDelete}: {Standard: StandardOwner},
	{ResourceFavorite, ActionList}:   {Standard: StandardOwner},

	{ResourceUser, ActionRead}:   {Standard: StandardNone},
	{ResourceUser, ActionList}:   {Standard: StandardNone},
	{ResourceUser, ActionUpdate}: {Standard: StandardNone},
	{ResourceUser, ActionDelete}: {Standard: StandardNone},

	{ResourceUserApproval, ActionUpdate}: {Standard: StandardNone},

	{ResourceSettings, ActionRead}:   {Public: true},
	{ResourceSettings, ActionUpdate}: {Standard: StandardNone},

	{ResourceUpload, ActionCreate}: {Standard: StandardNone},
	{ResourceUpload, ActionRead}:   {Standard: StandardNone},
	{ResourceUpload, ActionList}:   {Standard: StandardNone},
	{ResourceUpload, ActionDelete}: {Standard: StandardNone},

	{ResourceAnalytics, ActionRead}: {Standard: StandardNone},

	{ResourceProfile, ActionRead}: {Standard: StandardOwner, AllowPending: true},

	{ResourceSession, ActionDelete}: {Standard: StandardOwner, AllowPending: true},
}

// LookupRule returns the policy row for a resource/action pair.
// The second return value is false for operations the table does not know.
func LookupRule(resource Resource, action Action) (Rule, bool) {
	rule, ok := rules[ruleKey{Resource: resource, Action: action}]
	return rule, ok
}
