package cli

// snapshotSchema is the CUE schema a snapshot file must satisfy before the
// derivation core sees it. The core assumes valid input (it is total but
// garbage-in/garbage-out on dates); this schema is the validation boundary
// that makes the assumption safe.
//
// Structs carry "..." so unknown upstream fields pass through, and status
// codes are plain strings: unknown codes are a defined display fallback,
// not a validation failure.
const snapshotSchema = `
#Date: =~"^\\d{4}-\\d{2}-\\d{2}"

#Participant: {
	id:           string & !=""
	ndis_number:  string & !=""
	first_name:   string & !=""
	last_name:    string & !=""
	date_of_birth?: #Date
	country:      string
	language_spoken:      string
	interpreter_required: bool
	is_active:    bool
	created_at:   #Date
	updated_at:   #Date
	...
}

#BudgetCategory: {
	id:               string & !=""
	allocated_amount: number & >=0
	spent_amount:     number & >=0
	committed_amount: number & >=0
	...
}

#Goal: {
	id:         string & !=""
	goal_title: string & !=""
	status:     string & !=""
	target_date?: #Date
	...
}

#Plan: {
	id:              string & !=""
	plan_start_date: #Date
	plan_end_date:   #Date
	plan_status:     string & !=""
	management_type: string
	plan_review_date?: #Date
	budget_categories?: [...#BudgetCategory]
	goals?: [...#Goal]
	...
}

#ServiceAgreement: {
	id:         string & !=""
	start_date: #Date
	end_date?:  #Date
	status:     string & !=""
	...
}

#Document: {
	id:            string & !=""
	document_name: string & !=""
	expiry_date?:  #Date
	access_level:  string & !=""
	...
}

#CaseNote: {
	id:                  string & !=""
	note_type:           string & !=""
	content:             string
	follow_up_required:  bool
	follow_up_completed: bool
	follow_up_date?:     #Date
	created_at:          #Date
	...
}

#Communication: {
	id:                  string & !=""
	communication_type:  string & !=""
	direction:           "inbound" | "outbound"
	communication_date:  #Date
	follow_up_required:  bool
	follow_up_completed: bool
	follow_up_date?:     #Date
	...
}

#Snapshot: {
	participant: #Participant
	active_plan?: #Plan
	plans?: [...#Plan]
	contacts?: [...]
	service_agreements?: [...#ServiceAgreement]
	documents?: [...#Document]
	case_notes?: [...#CaseNote]
	communications?: [...#Communication]
	tasks?: [...]
	...
}
`
