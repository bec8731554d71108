// Package seed supplies the fixed reference data the session starts from:
// the practice roster, the default tag registry, and each user's starting
// notes. Accessors always return fresh copies so callers can mutate their
// snapshot freely.
package seed

import (
	"time"

	"tableflip.dev/chairside/pkg/note"
	"tableflip.dev/chairside/pkg/profile"
)

var tags = []note.Tag{
	{ID: "t1", Label: "Patient Care", Color: "#0F7F8E"},
	{ID: "t2", Label: "Research", Color: "#47B7C2"},
	{ID: "t3", Label: "Workflow", Color: "#2A9AA8"},
	{ID: "t4", Label: "Meeting", Color: "#5FAFB8"},
	{ID: "t5", Label: "Follow-up", Color: "#7CC3CA"},
	{ID: "t6", Label: "Billing", Color: "#3E6770"},
	{ID: "t7", Label: "Clinical", Color: "#0C6A78"},
	{ID: "t8", Label: "Hygiene", Color: "#1A9BAA"},
	{ID: "t9", Label: "Orthodontics", Color: "#2A7A8A"},
	{ID: "t10", Label: "Scheduling", Color: "#4EACB5"},
}

var users = []profile.UserProfile{
	{
		ID: "u1", Name: "Dr. Sarah Chen", Role: "Dentist",
		Specialty: "General Practice", Initials: "SC",
		Gradient: [2]string{"#0E5663", "#0F7F8E"},
	},
	{
		ID: "u2", Name: "Maria Rodriguez", Role: "Dental Hygienist",
		Specialty: "Periodontal Care", Initials: "MR",
		Gradient: [2]string{"#0F7F8E", "#47B7C2"},
	},
	{
		ID: "u3", Name: "James Park", Role: "Office Manager",
		Specialty: "Billing & Scheduling", Initials: "JP",
		Gradient: [2]string{"#2A6B78", "#3E9EAD"},
	},
	{
		ID: "u4", Name: "Dr. Michael Torres", Role: "Orthodontist",
		Specialty: "Braces & Aligners", Initials: "MT",
		Gradient: [2]string{"#0C5C68", "#1A8A9A"},
	},
}

// Tags returns the default tag registry in display order.
func Tags() []note.Tag {
	return append([]note.Tag(nil), tags...)
}

// Users returns the practice roster.
func Users() []profile.UserProfile {
	return append([]profile.UserProfile(nil), users...)
}

// NotesFor returns the starting notes for a user, newest relevance first.
// Unknown ids get an empty collection.
func NotesFor(userID string) []note.Note {
	build, ok := notesByUser[userID]
	if !ok {
		return []note.Note{}
	}
	return build()
}

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		panic("seed: bad timestamp " + value)
	}
	return t
}

func atp(value string) *time.Time {
	t := at(value)
	return &t
}

func tagged(ids ...int) []note.Tag {
	out := make([]note.Tag, 0, len(ids))
	for _, i := range ids {
		out = append(out, tags[i])
	}
	return out
}

var notesByUser = map[string]func() []note.Note{
	"u1": chenNotes,
	"u2": rodriguezNotes,
	"u3": parkNotes,
	"u4": torresNotes,
}

func chenNotes() []note.Note {
	return []note.Note{
		{
			ID: "u1-n1", Title: "Treatment Plan",
			PersonName: "M. Lawson", EventDate: atp("2026-02-26T09:00:00"),
			Content: "Patient: M. Lawson, 42F\n\nPresenting concerns:\n" +
				"• Sensitivity upper-left quadrant (tooth #14)\n• Cosmetic whitening interest\n\n" +
				"Proposed treatment:\n1. Composite restoration #14\n2. Scaling & root planing\n" +
				"3. Whitening tray impressions at follow-up\n\nNext appointment: March 6 – restorations",
			Tags: tagged(6, 0), Pinned: true,
			CreatedAt: at("2026-02-20T09:00:00"), UpdatedAt: at("2026-02-26T10:15:00"),
		},
		{
			ID: "u1-n2", Title: "Post-Op Notes – Extraction #19",
			PersonName: "R. Thompson", EventDate: atp("2026-02-24T14:30:00"),
			Content: "Procedure: Surgical extraction, lower-left first molar (#19)\n\n" +
				"Complications: None. Socket irrigated, collagen plug placed.\n\n" +
				"Follow-up: 7 days for socket check. Monitor for dry socket signs.\n" +
				"Prescribed: Amoxicillin 500mg x7d, Ibuprofen 600mg PRN",
			Tags: tagged(6, 4), Pinned: true, Color: "#E2F7F8",
			CreatedAt: at("2026-02-24T14:30:00"), UpdatedAt: at("2026-02-24T15:45:00"),
		},
		{
			ID: "u1-n3", Title: "CE Course Notes – Adhesive Dentistry",
			Content: "AGD Webinar – Feb 18, 2026\n\nKey takeaways:\n" +
				"• Universal adhesives outperform multi-step systems in 5-year trials\n" +
				"• Bulk-fill composites viable up to 4mm in Class I/II restorations\n\n" +
				"Products to evaluate: Scotchbond Universal Plus, Filtek One Bulk Fill",
			Tags:      tagged(1),
			CreatedAt: at("2026-02-18T20:00:00"), UpdatedAt: at("2026-02-19T08:00:00"),
		},
		{
			ID: "u1-n4", Title: "Staff Huddle – Feb 25 Action Items",
			Content: "From today's team huddle:\n\n• Review new consent form template before Friday\n" +
				"• Update Dentrix profiles with emergency contact fields\n" +
				"• Maria to pilot the new prophy protocol next week\n\nNext huddle: March 4, 8:00 AM",
			Tags:      tagged(3),
			CreatedAt: at("2026-02-25T09:30:00"), UpdatedAt: at("2026-02-25T09:45:00"),
		},
		{
			ID: "u1-n5", Title: "Implant Referral Protocol",
			Content: "Updated referral steps for implant cases:\n\n" +
				"1. Confirm bone density via CBCT\n2. Refer to Dr. Nguyen (oral surgeon)\n" +
				"3. Schedule 3-month post-implant crown prep in Dentrix\n\n" +
				"Note: insurance pre-auth required before referral for Delta and Sunlife patients.",
			Tags:      tagged(2, 6),
			CreatedAt: at("2026-02-10T11:00:00"), UpdatedAt: at("2026-02-21T16:00:00"),
		},
		{
			ID: "u1-n6", Title: "Archive: Old Consent Form v2",
			Content:  "Superseded by v3 signed off Feb 2026. Kept for audit trail only.",
			Archived: true,
			CreatedAt: at("2025-06-01T00:00:00"), UpdatedAt: at("2026-02-01T00:00:00"),
		},
	}
}

func rodriguezNotes() []note.Note {
	return []note.Note{
		{
			ID: "u2-n1", Title: "Periodontal Protocol – High-Risk Patients",
			Content: "Updated prophy protocol for patients with 4mm+ pockets:\n\n" +
				"• Gracey 11/12, 13/14 curettes for posterior interproximal\n" +
				"• Irrigate with 0.12% chlorhexidine post-scaling\n" +
				"• Recall interval: 3 months (not 6) – confirm with Dr. Chen",
			Tags: tagged(7, 0), Pinned: true,
			CreatedAt: at("2026-02-15T08:00:00"), UpdatedAt: at("2026-02-26T09:00:00"),
		},
		{
			ID: "u2-n2", Title: "Patient Ed – Flossing Technique Reminders",
			Content: "Talking points used during appointments:\n\n" +
				"• C-shape around each tooth, not just snapping down\n" +
				"• Floss threaders for bridges and implants\n" +
				"• Water flosser for patients with limited dexterity",
			Tags: tagged(0, 7), Pinned: true, Color: "#E2F7F8",
			CreatedAt: at("2026-02-12T10:00:00"), UpdatedAt: at("2026-02-23T14:00:00"),
		},
		{
			ID: "u2-n3", Title: "Instrument Sterilization Checklist",
			Content: "End-of-day protocol:\n\n□ Ultrasonic cleaner: 10 min cycle\n" +
				"□ Autoclave: 134°C, 18 min, spore test every Monday\n" +
				"□ Handpieces: lubricate before bagging",
			Tags:      tagged(2, 7),
			CreatedAt: at("2026-01-20T08:00:00"), UpdatedAt: at("2026-02-10T08:30:00"),
		},
		{
			ID: "u2-n4", Title: "Tobacco Cessation Resources",
			Content: "Resources to share with patients who smoke:\n\n" +
				"• Health Canada Quit Line: 1-866-366-3667\n" +
				"• Nicotine replacement: patch, gum, lozenge (OTC)\n\nDocument counseling in chart notes.",
			Tags:      tagged(0, 1),
			CreatedAt: at("2026-02-05T09:00:00"), UpdatedAt: at("2026-02-05T09:30:00"),
		},
		{
			ID: "u2-n5", Title: "CE Notes – Oral-Systemic Link Seminar",
			Content: "BC Dental Hygienists Association – Feb 14 Seminar\n\n" +
				"• Perio bacteria linked to cardiovascular inflammation markers\n" +
				"• Diabetic patients: HbA1c improves with consistent perio treatment\n\n" +
				"Action: update medical history intake form to flag diabetes, CVD, pregnancy.",
			Tags:      tagged(1, 7),
			CreatedAt: at("2026-02-14T17:00:00"), UpdatedAt: at("2026-02-15T08:00:00"),
		},
	}
}

func parkNotes() []note.Note {
	return []note.Note{
		{
			ID: "u3-n1", Title: "Insurance Pre-Auth Tracker – March",
			Content: "Outstanding pre-authorizations:\n\n" +
				"• Lawson – implant crown (Delta Dental) – submitted Feb 10, no response\n" +
				"• Kim – orthodontic consult (Sunlife) – approved, forwarded to Dr. Torres\n" +
				"• Thompson – bone graft (Manulife) – rejected, appeal drafted",
			Tags: tagged(5, 2), Pinned: true,
			CreatedAt: at("2026-02-26T08:00:00"), UpdatedAt: at("2026-02-26T11:00:00"),
		},
		{
			ID: "u3-n2", Title: "March Scheduling – Spring Break Coverage",
			Content: "Spring break week: March 16–21\n\nDr. Chen: Mon–Wed only. " +
				"Dr. Torres: out all week (conference).\n\n" +
				"• Block Torres' chair for that week in Dentrix\n" +
				"• Offer rescheduling to 12 affected ortho patients\n\nConfirm temp agency booking by March 1.",
			Tags: tagged(9, 3), Pinned: true, Color: "#E2F7F8",
			CreatedAt: at("2026-02-22T09:00:00"), UpdatedAt: at("2026-02-25T10:30:00"),
		},
		{
			ID: "u3-n3", Title: "Billing: Month-End Reconciliation Checklist",
			Content: "Month-end process (last business day):\n\n" +
				"1. Export day sheets from Dentrix – verify against POS totals\n" +
				"2. Submit outstanding claims via CDAnet\n" +
				"3. Run aging report – follow up on 90+ day balances\n" +
				"4. Reconcile card terminal with bookkeeper",
			Tags:      tagged(5, 2),
			CreatedAt: at("2026-01-31T16:00:00"), UpdatedAt: at("2026-02-24T09:00:00"),
		},
		{
			ID: "u3-n4", Title: "New Patient Intake Workflow",
			Content: "Updated process as of Feb 2026:\n\n" +
				"1. Receptionist collects: name, DOB, insurance ID, chief complaint\n" +
				"2. Digital intake form link sent 24h before appointment\n" +
				"3. Manual step: verify insurance eligibility in carrier portal\n\n" +
				"Average intake time reduced from 18 min → 6 min.",
			Tags:      tagged(2, 0),
			CreatedAt: at("2026-02-03T10:00:00"), UpdatedAt: at("2026-02-20T14:00:00"),
		},
		{
			ID: "u3-n5", Title: "Staff Meeting – Feb 25",
			Content: "Attendees: Dr. Chen, Maria, James, Dr. Torres (remote)\n\n" +
				"• Q1 revenue tracking – on target (+4% vs Q1 2025)\n" +
				"• New parking validation process starts March 1\n\n" +
				"Action items: order prophy paste and disposable bibs.",
			Tags:      tagged(3),
			CreatedAt: at("2026-02-25T09:30:00"), UpdatedAt: at("2026-02-25T10:00:00"),
		},
	}
}

func torresNotes() []note.Note {
	return []note.Note{
		{
			ID: "u4-n1", Title: "Active Cases – Aligner Progress Review",
			Content: "Progress as of Feb 2026:\n\n" +
				"• Kim, J. (14F) – Invisalign, tray 18/32. On track.\n" +
				"• Singh, P. (22M) – tray 6/28. Wearing compliance concern.\n" +
				"• Walker, T. (35F) – Spark, tray 12/20. Space closure complete.\n\n" +
				"All progress photos uploaded to chart.",
			Tags: tagged(8, 0), Pinned: true,
			CreatedAt: at("2026-02-24T10:00:00"), UpdatedAt: at("2026-02-26T09:30:00"),
		},
		{
			ID: "u4-n2", Title: "Lab Order Tracking – March",
			Content: "Outstanding lab orders:\n\n" +
				"• Singh retainer (upper Hawley) – expected Mar 3 via OrthoCast\n" +
				"• Walker final refinement trays – Align ETA 10 business days\n\n" +
				"Reminder: lab turnaround running 2–3 days longer than usual.",
			Tags: tagged(8, 2), Pinned: true, Color: "#E2F7F8",
			CreatedAt: at("2026-02-25T11:00:00"), UpdatedAt: at("2026-02-26T08:45:00"),
		},
		{
			ID: "u4-n3", Title: "AAO Conference Notes – Feb 2026",
			Content: "Sessions attended:\n\n" +
				"• Digital workflow: iTero integration (Element 5D worth trialing)\n" +
				"• TAD placement: palatal TADs more stable than buccal in vertical cases\n" +
				"• Retention: fixed lower retainer + clear overlay favored\n\n" +
				"Full summary at March team meeting.",
			Tags:      tagged(1, 8),
			CreatedAt: at("2026-02-17T20:00:00"), UpdatedAt: at("2026-02-18T09:00:00"),
		},
		{
			ID: "u4-n4", Title: "Phase 1 Treatment Criteria – Reference",
			Content: "When to recommend interceptive treatment:\n\n" +
				"✓ Posterior crossbite with functional shift\n" +
				"✓ Severe crowding with arch length discrepancy >8mm\n" +
				"✗ Not for purely aesthetic concerns before permanent dentition\n\n" +
				"Discuss timing with Dr. Chen for referred patients.",
			Tags:      tagged(8, 6),
			CreatedAt: at("2026-01-15T00:00:00"), UpdatedAt: at("2026-02-10T00:00:00"),
		},
		{
			ID: "u4-n5", Title: "Aligner Compliance Follow-up",
			PersonName: "P. Singh", EventDate: atp("2026-02-20T15:00:00"),
			Content: "At tray 6 check, noticeable tracking lag on lower anteriors. " +
				"Patient wearing 12–14 hrs/day instead of 22.\n\n" +
				"If no improvement by tray 9, may need refinements.\n\nFollow-up appointment: March 12",
			Tags:      tagged(4, 0),
			CreatedAt: at("2026-02-20T15:00:00"), UpdatedAt: at("2026-02-20T15:30:00"),
		},
	}
}
