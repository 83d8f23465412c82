package uimsg

// Message keys resolved against the translation bundle.
const (
	MsgMenu          = "menu"
	MsgPromptOption  = "promptOption"
	MsgInvalidOption = "invalidOption"
	MsgPressEnter    = "pressEnter"
	MsgGoodbye       = "goodbye"

	MsgPromptCategoryName    = "promptCategoryName"
	MsgPromptParentCategory  = "promptParentCategory"
	MsgPromptSubcategoryName = "promptSubcategoryName"
	MsgPromptTaskCategory    = "promptTaskCategory"
	MsgPromptTitle           = "promptTitle"
	MsgPromptDescription     = "promptDescription"
	MsgPromptPriority        = "promptPriority"
	MsgPromptDueDate         = "promptDueDate"
	MsgPromptTaskID          = "promptTaskID"

	MsgCategoryAdded    = "categoryAdded"
	MsgSubcategoryAdded = "subcategoryAdded"
	MsgTaskAdded        = "taskAdded"
	MsgTaskModified     = "taskModified"
	MsgTaskRemoved      = "taskRemoved"
	MsgActionUndone     = "actionUndone"
	MsgActionRedone     = "actionRedone"
	MsgUrgentAdded      = "urgentAdded"
	MsgUrgentProcessing = "urgentProcessing"
	MsgUrgentHeader     = "urgentHeader"
	MsgNoCategories     = "noCategories"
	MsgNoTasksInList    = "noTasksInList"

	MsgErrCategoryExists   = "errCategoryExists"
	MsgErrCategoryNotFound = "errCategoryNotFound"
	MsgErrParentNotFound   = "errParentNotFound"
	MsgErrTaskNotFound     = "errTaskNotFound"
	MsgErrNothingToUndo    = "errNothingToUndo"
	MsgErrNothingToRedo    = "errNothingToRedo"
	MsgErrNoUrgentTasks    = "errNoUrgentTasks"
	MsgErrEmptyName        = "errEmptyName"
	MsgErrInvalidPriority  = "errInvalidPriority"
	MsgErrInvalidDate      = "errInvalidDate"
	MsgErrInvalidID        = "errInvalidID"
)
