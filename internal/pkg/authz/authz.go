// Package authz decides whether a user may exercise a capability on a resource.
package authz

import (
	"github.com/bizplatform/pmcore/internal/modules/model"
)

type Capability string

const (
	ViewProject         Capability = "project:view"
	EditProject         Capability = "project:edit"
	DeleteProject       Capability = "project:delete"
	CreateProject       Capability = "project:create"
	ManageCosts         Capability = "cost:manage"
	ViewAnalytics       Capability = "analytics:view"
	CreateSnapshot      Capability = "snapshot:create"
	ExportMetrics       Capability = "analytics:export"
	ManageTemplates     Capability = "template:manage"
	InstantiateTemplate Capability = "template:instantiate"
	ManageResources     Capability = "resource:manage"
	ViewResources       Capability = "resource:view"
)

var roleCapabilities = map[string][]Capability{
	model.RoleViewer: {
		ViewProject,
		ViewAnalytics,
		ViewResources,
	},
	model.RoleMember: {
		ViewProject,
		EditProject,
		ViewAnalytics,
		ExportMetrics,
		ViewResources,
		CreateProject,
		InstantiateTemplate,
	},
	model.RoleManager: {
		ViewProject,
		EditProject,
		DeleteProject,
		CreateProject,
		ManageCosts,
		ViewAnalytics,
		CreateSnapshot,
		ExportMetrics,
		ManageTemplates,
		InstantiateTemplate,
		ManageResources,
		ViewResources,
	},
}

// Granted reports whether role carries capability, ignoring any resource.
func Granted(role string, capability Capability) bool {
	if role == model.RoleAdmin {
		return true
	}
	for _, c := range roleCapabilities[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// Authorize checks the role grant and, for project resources, membership.
// Deleting a project additionally requires ownership unless the user is admin.
func Authorize(user *model.User, capability Capability, resource any) bool {
	if user == nil || !Granted(user.Role, capability) {
		return false
	}
	if user.Role == model.RoleAdmin {
		return true
	}

	switch r := resource.(type) {
	case *model.Project:
		if r == nil {
			return false
		}
		if capability == DeleteProject {
			return r.OwnerID == user.ID
		}
		return r.HasMember(user.ID)
	default:
		return true
	}
}
