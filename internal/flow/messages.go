package flow

import "fmt"

const (
	msgNoBranchesYet      = "No branches exist yet. Let's create them now."
	msgTotalCodebases     = "How many parallel codebases do you want to maintain (e.g. multi-org development)?"
	msgCodebasePrefix     = "As this is not your first codebase, please define a prefix for its support branches"
	msgNameConventions    = "Now, let's configure your naming convention for short-lived support branches"
	labelSameAsProduction = "[same as production]"
	labelOther            = "[other]"
)

// chooseMessage is the question offering existing branches for role.
func chooseMessage(role Role, index int) string {
	if role == RoleProduction {
		return fmt.Sprintf("Which existent branch do you choose for production releases of codebase %d?", index)
	}
	return fmt.Sprintf("Which existent branch do you choose for development of codebase %d?", index)
}

// nameMessage is the free-text question naming the branch for role.
func nameMessage(role Role, index int) string {
	if role == RoleProduction {
		return fmt.Sprintf("Define the name of the branch used for production releases of codebase %d", index)
	}
	return fmt.Sprintf("Define the name of the branch used for development of codebase %d", index)
}

func supportMessage(role SupportRole) string {
	return fmt.Sprintf("Which name prefix do you want for %s branches?", role)
}
