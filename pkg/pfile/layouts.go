package pfile

// Header layouts, one per scanner software revision.
//
// Field names follow the GE rdbm naming used by pfile-tools. u64 fields were
// C "unsigned long" on the LP64 systems that wrote these files.

var rev16 = mustSchema("16", 145453, concat(
	[]Field{
		f32("revision"),
		pad("pad_0", 12),
		text("scan_date_str", 10),
		text("scan_time_str", 8),
		pad("pad_1", 30),
		i16("pass_count"),
		pad("pad_2", 2),
		u16("slice_count"),
		i16("echo_count"),
		pad("pad_3", 2),
		i16("frame_count"),
		pad("pad_4", 4),
		u16("frame_size"),
		pad("pad_5", 20),
		u16("acq_x_res"),
		i16("acq_y_res"),
		i16("recon_x_res"),
		i16("recon_y_res"),
		i16("image_size"),
		i32("recon_z_res"),
		pad("pad_6", 100),
	},
	floats("rh_user", 0, 19),
	[]Field{
		pad("pad_7", 704),
	},
	floats("rh_user", 20, 48),
	[]Field{
		pad("pad_8", 528),
		f32("bandwidth"),
		pad("pad_9", 12),
		u64("data_size"),
		u64("ssp_save"),
		u64("uda_save"),
		pad("pad_10", 137214),
		i32("aps_r1"),
		i32("aps_r2"),
		i32("aps_tg"),
		u32("aps_frequency"),
		f32("scale_i"),
		f32("scale_q"),
		pad("pad_11", 276),
		i16("x_shim"),
		i16("y_shim"),
		i16("z_shim"),
		i16("recon_enabled"),
		pad("pad_12", 1774),
		i32("magnet_strength"),
		i32("patient_weight_g"),
		i32("exam_timestamp"),
		pad("pad_13", 52),
		u16("exam_number"),
		pad("pad_14", 18),
		i16("patient_age"),
		pad("pad_15", 2),
		i16("patient_sex"),
		pad("pad_16", 2),
		i16("patient_trauma"),
		pad("pad_17", 2),
		i16("study_status"),
		pad("pad_18", 166),
		text("exam_description", 65),
		text("exam_type", 3),
		text("system_id", 9),
		pad("pad_20", 14),
		text("hospital_name", 33),
		text("patient_id_2", 13),
		text("patient_name_2", 25),
		text("service_id", 16),
		pad("pad_22", 124),
		text("patient_name", 65),
		text("patient_id", 65),
		text("req_num", 17),
		text("date_of_birth", 9),
		pad("pad_23", 492),
		i16("series_number"),
		pad("pad_26", 122),
		text("series_description", 65),
		pad("pad_27", 21),
		text("protocol", 25),
		text("start_ras", 1),
		text("end_ras", 1),
		pad("pad_28", 1541),
		f32("x_field_of_view"),
		f32("y_field_of_view"),
		f32("scan_duration"),
		f32("z_thickness"),
		pad("pad_29", 36),
	},
	floats("op_user", 0, 22),
	[]Field{
		pad("pad_30", 8),
	},
	floats("op_user", 23, 24),
	[]Field{
		pad("pad_31", 60),
	},
	floats("op_user", 25, 48),
	[]Field{
		pad("pad_32", 60),
		f32("x_dim"),
		f32("y_dim"),
		f32("x_size"),
		f32("y_size"),
		f32("r_center"),
		f32("a_center"),
		f32("s_center"),
		f32("r_norm"),
		f32("a_norm"),
		f32("s_norm"),
		pad("pad_33", 232),
		i32("tr"),
		i32("ti"),
		i32("te"),
		pad("pad_34", 548),
		text("psd_name", 33),
		pad("pad_36", 84),
		text("coil_name", 17),
		pad("pad_37", 115),
		text("long_coil_name", 24),
	},
))

var rev20_006 = mustSchema("20.006", 149788, concat(
	[]Field{
		f32("revision"),
		pad("pad_0", 12),
		text("scan_date_str", 10),
		text("scan_time_str", 8),
		pad("pad_1", 30),
		i16("pass_count"),
		pad("pad_2", 2),
		u16("slice_count"),
		i16("echo_count"),
		pad("pad_3", 2),
		i16("frame_count"),
		pad("pad_4", 4),
		u16("frame_size"),
		pad("pad_5", 20),
		u16("acq_x_res"),
		i16("acq_y_res"),
		i16("recon_x_res"),
		i16("recon_y_res"),
		i16("image_size"),
		i32("recon_z_res"),
		pad("pad_6", 100),
	},
	floats("rh_user", 0, 19),
	[]Field{
		pad("pad_7", 704),
	},
	floats("rh_user", 20, 48),
	[]Field{
		pad("pad_8", 528),
		f32("bandwidth"),
		pad("pad_9", 12),
		u64("data_size"),
		u64("ssp_save"),
		u64("uda_save"),
		pad("pad_10", 139656),
		i32("aps_r1"),
		i32("aps_r2"),
		i32("aps_tg"),
		u32("aps_frequency"),
		f32("scale_i"),
		f32("scale_q"),
		pad("pad_11", 276),
		i16("x_shim"),
		i16("y_shim"),
		i16("z_shim"),
		i16("recon_enabled"),
		pad("pad_12", 1744),
		i32("magnet_strength"),
		i32("patient_weight_g"),
		i32("exam_timestamp"),
		pad("pad_13", 112),
		u16("exam_number"),
		pad("pad_14", 18),
		i16("patient_age"),
		pad("pad_15", 2),
		i16("patient_sex"),
		pad("pad_16", 2),
		i16("patient_trauma"),
		pad("pad_17", 2),
		i16("study_status"),
		pad("pad_18", 70),
		text("history", 257),
		pad("pad_19", 195),
		text("exam_description", 65),
		text("exam_type", 3),
		text("system_id", 9),
		pad("pad_20", 14),
		text("hospital_name", 33),
		pad("pad_21", 24),
		text("service_id", 16),
		pad("pad_22", 100),
		text("patient_name", 65),
		text("patient_id", 65),
		text("req_num", 17),
		text("date_of_birth", 9),
		pad("pad_23", 560),
		f32("start_location"),
		f32("end_location"),
		pad("pad_24", 352),
		i32("series_timestamp"),
		pad("pad_25", 206),
		i16("series_number"),
		pad("pad_26", 138),
		text("series_description", 65),
		pad("pad_27", 21),
		text("protocol", 25),
		text("start_ras", 1),
		text("end_ras", 1),
		pad("pad_28", 1769),
		f32("x_field_of_view"),
		f32("y_field_of_view"),
		f32("scan_duration"),
		f32("z_thickness"),
		pad("pad_29", 36),
	},
	floats("op_user", 0, 22),
	[]Field{
		pad("pad_30", 8),
	},
	floats("op_user", 23, 24),
	[]Field{
		pad("pad_31", 60),
	},
	floats("op_user", 25, 48),
	[]Field{
		pad("pad_32", 60),
		f32("x_dim"),
		f32("y_dim"),
		f32("x_size"),
		f32("y_size"),
		f32("r_center"),
		f32("a_center"),
		f32("s_center"),
		f32("r_norm"),
		f32("a_norm"),
		f32("s_norm"),
		pad("pad_33", 336),
		i32("tr"),
		i32("ti"),
		i32("te"),
		pad("pad_34", 432),
		i16("frequency_direction"),
		pad("pad_35", 130),
		text("psd_name", 33),
		pad("pad_36", 84),
		text("coil_name", 17),
		pad("pad_37", 115),
		text("long_coil_name", 24),
		pad("pad_38", 543),
	},
))

var rev20_007 = mustSchema("20.007", 149788, concat(
	[]Field{
		f32("revision"),
		pad("pad_0", 12),
		text("scan_date_str", 10),
		text("scan_time_str", 8),
		pad("pad_0p", 14),
		i16("dacq_ctrl"),
		pad("pad_1", 14),
		i16("pass_count"),
		pad("pad_2", 2),
		u16("slice_count"),
		i16("echo_count"),
		pad("pad_3", 2),
		i16("frame_count"),
		pad("pad_4", 4),
		u16("frame_size"),
		pad("pad_5", 20),
		u16("acq_x_res"),
		i16("acq_y_res"),
		i16("recon_x_res"),
		i16("recon_y_res"),
		i16("image_size"),
		i32("recon_z_res"),
		pad("pad_6", 100),
	},
	floats("rh_user", 0, 19),
	[]Field{
		pad("pad_7", 704),
	},
	floats("rh_user", 20, 48),
	[]Field{
		pad("pad_8", 528),
		f32("bandwidth"),
		pad("pad_9", 12),
		u64("data_size"),
		u64("ssp_save"),
		u64("uda_save"),
		pad("pad_9p", 980),
		i16("num_difdirs"),
		pad("pad_10", 138674),
		i32("aps_r1"),
		i32("aps_r2"),
		i32("aps_tg"),
		u32("aps_frequency"),
		f32("scale_i"),
		f32("scale_q"),
		pad("pad_11", 276),
		i16("x_shim"),
		i16("y_shim"),
		i16("z_shim"),
		i16("recon_enabled"),
		pad("pad_12", 1744),
		i32("magnet_strength"),
		i32("patient_weight_g"),
		i32("exam_timestamp"),
		pad("pad_13", 112),
		u16("exam_number"),
		pad("pad_14", 18),
		i16("patient_age"),
		pad("pad_15", 2),
		i16("patient_sex"),
		pad("pad_16", 2),
		i16("patient_trauma"),
		pad("pad_17", 2),
		i16("study_status"),
		pad("pad_18", 70),
		text("history", 257),
		text("referring_physicians_name", 65),
		text("radiologists_name", 65),
		text("operators_name", 65),
		text("exam_description", 65),
		text("exam_type", 3),
		text("system_id", 9),
		pad("pad_20", 22),
		text("hospital_name", 33),
		pad("pad_21", 24),
		text("service_id", 16),
		pad("pad_22", 100),
		text("patient_name", 65),
		text("patient_id", 65),
		text("req_num", 17),
		text("date_of_birth", 9),
		pad("pad_23", 552),
		f32("start_location"),
		f32("end_location"),
		pad("pad_24", 352),
		i32("series_timestamp"),
		pad("pad_25", 206),
		i16("series_number"),
		pad("pad_26", 138),
		text("series_description", 65),
		pad("pad_27", 21),
		text("protocol", 25),
		text("start_ras", 1),
		text("end_ras", 1),
		pad("pad_28", 1769),
		f32("x_field_of_view"),
		f32("y_field_of_view"),
		f32("scan_duration"),
		f32("z_thickness"),
		pad("pad_29", 36),
	},
	floats("op_user", 0, 22),
	[]Field{
		pad("pad_30", 8),
	},
	floats("op_user", 23, 24),
	[]Field{
		pad("pad_31", 60),
	},
	floats("op_user", 25, 48),
	[]Field{
		pad("pad_32", 60),
		f32("x_dim"),
		f32("y_dim"),
		f32("x_size"),
		f32("y_size"),
		f32("r_center"),
		f32("a_center"),
		f32("s_center"),
		f32("r_norm"),
		f32("a_norm"),
		f32("s_norm"),
		pad("pad_33", 336),
		i32("tr"),
		i32("ti"),
		i32("te"),
		pad("pad_33p", 374),
		i16("num_slices"),
		pad("pad_34", 56),
		i16("frequency_direction"),
		pad("pad_35", 130),
		text("psd_name", 33),
		pad("pad_36", 84),
		text("coil_name", 17),
		pad("pad_37", 115),
		text("long_coil_name", 24),
		pad("pad_38", 543),
	},
))

var rev26_002 = mustSchema("26.002", 200628, concat(
	[]Field{
		f32("revision"),
		pad("pad_0", 88),
		text("scan_date_str", 10),
		text("scan_time_str", 8),
		pad("pad_0p", 14),
		i16("dacq_ctrl"),
		pad("pad_1", 14),
		i16("pass_count"),
		pad("pad_2", 2),
		u16("slice_count"),
		i16("echo_count"),
		pad("pad_3", 2),
		i16("frame_count"),
		pad("pad_4", 4),
		u16("frame_size"),
		pad("pad_5", 20),
		u16("acq_x_res"),
		i16("acq_y_res"),
		i16("recon_x_res"),
		i16("recon_y_res"),
		i16("image_size"),
		i32("recon_z_res"),
		pad("pad_6", 88),
	},
	floats("rh_user", 0, 19),
	[]Field{
		pad("pad_7", 576),
	},
	floats("rh_user", 20, 48),
	[]Field{
		pad("pad_8", 480),
		f32("bandwidth"),
		pad("pad_9", 4),
		u64("data_size"),
		u64("ssp_save"),
		u64("uda_save"),
		pad("pad_9p", 36),
		i16("num_difdirs"),
		pad("pad_10", 188890),
		i32("aps_r1"),
		i32("aps_r2"),
		i32("aps_tg"),
		u32("aps_frequency"),
		f32("scale_i"),
		f32("scale_q"),
		pad("pad_11", 276),
		i16("x_shim"),
		i16("y_shim"),
		i16("z_shim"),
		i16("recon_enabled"),
		pad("pad_12", 3432),
		i32("magnet_strength"),
		i32("patient_weight_g"),
		i32("exam_timestamp"),
		pad("pad_13", 112),
		u16("exam_number"),
		pad("pad_14", 18),
		i16("patient_age"),
		pad("pad_15", 2),
		i16("patient_sex"),
		pad("pad_16", 2),
		i16("patient_trauma"),
		pad("pad_17", 2),
		i16("study_status"),
		pad("pad_18", 70),
		text("history", 257),
		text("referring_physicians_name", 65),
		text("radiologists_name", 65),
		text("operators_name", 65),
		text("exam_description", 65),
		text("exam_type", 3),
		text("system_id", 9),
		pad("pad_20", 22),
		text("hospital_name", 33),
		pad("pad_21", 24),
		text("service_id", 16),
		pad("pad_22", 100),
		text("patient_name", 65),
		text("patient_id", 65),
		text("req_num", 17),
		text("date_of_birth", 9),
		pad("pad_23", 552),
		f32("start_location"),
		f32("end_location"),
		pad("pad_24", 352),
		i32("series_timestamp"),
		pad("pad_25", 100),
		i32("series_number"),
		pad("pad_26", 242),
		text("series_description", 65),
		pad("pad_27", 21),
		text("protocol", 25),
		text("start_ras", 1),
		text("end_ras", 1),
		pad("pad_28", 1769),
		f32("x_field_of_view"),
		f32("y_field_of_view"),
		f32("scan_duration"),
		f32("z_thickness"),
		pad("pad_29", 36),
	},
	floats("op_user", 0, 22),
	[]Field{
		pad("pad_30", 8),
	},
	floats("op_user", 23, 24),
	[]Field{
		pad("pad_31", 60),
	},
	floats("op_user", 25, 48),
	[]Field{
		pad("pad_32", 60),
		f32("x_dim"),
		f32("y_dim"),
		f32("x_size"),
		f32("y_size"),
		f32("r_center"),
		f32("a_center"),
		f32("s_center"),
		f32("r_norm"),
		f32("a_norm"),
		f32("s_norm"),
		pad("pad_33", 336),
		i32("tr"),
		i32("ti"),
		i32("te"),
		pad("pad_33p", 374),
		i16("num_slices"),
		pad("pad_34", 56),
		i16("frequency_direction"),
		pad("pad_35", 130),
		text("psd_name", 33),
		pad("pad_36", 84),
		text("coil_name", 17),
		pad("pad_37", 115),
		text("long_coil_name", 24),
		pad("pad_38", 543),
	},
))
